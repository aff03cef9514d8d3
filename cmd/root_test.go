package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/wordladder/internal/config"
	"github.com/pfrederiksen/wordladder/internal/output"
)

const testWords = "cat\ncot\ncan\ncon\ncog\ndot\ndog\nrat\nxyz\nbean\n"

// writeDict writes the test word list and isolates HOME from the user's config
func writeDict(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(testWords), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func validationMsg(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
	return verr.Msg
}

func TestInteractive(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "cat\ndog\n", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t,
		"Enter start word (RETURN to quit): Enter destination word: "+
			"Found ladder: cat cot cog dog\ncat cot dot dog\n",
		stdout)
}

func TestInteractiveQuit(t *testing.T) {
	dict := writeDict(t)

	for _, input := range []string{"", "\n", "a\n"} {
		stdout, _, err := run(t, input, "--dict", dict)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "Enter start word (RETURN to quit): ", stdout, "input %q", input)
	}
}

func TestInteractiveNormalizesInput(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "  CON \nCat\n", "--dict", dict)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found ladder: con can cat\ncon cot cat\n")
}

func TestInteractiveRejectsStdinDictionary(t *testing.T) {
	writeDict(t)

	_, _, err := run(t, "cat\ndog\n", "--dict", "-")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	dict := writeDict(t)

	tests := []struct {
		name  string
		start string
		dest  string
		want  string
	}{
		{"two ladders", "con", "cat", "Found ladder: con can cat\ncon cot cat\n"},
		{"direct neighbor", "cat", "cot", "Found ladder: cat cot\n"},
		{"unreachable", "cat", "xyz", output.NoLadder + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, "", "solve", tt.start, tt.dest, "--dict", dict)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestSolveValidation(t *testing.T) {
	dict := writeDict(t)

	tests := []struct {
		name  string
		start string
		dest  string
		want  string
	}{
		{"same words", "cat", "cat", msgSameWords},
		{"start missing", "cup", "cat", msgNotInLexicon},
		{"dest missing", "cat", "cup", msgNotInLexicon},
		{"different lengths", "cat", "bean", msgNotInLexicon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, "", "solve", tt.start, tt.dest, "--dict", dict)
			require.Error(t, err)
			assert.Equal(t, tt.want, validationMsg(t, err))
			assert.Empty(t, stdout)
		})
	}
}

func TestSolveJSON(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "", "solve", "cat", "dog", "--dict", dict, "--format", "json")
	require.NoError(t, err)

	var res output.ResultJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "cat", res.Start)
	assert.Equal(t, "dog", res.Destination)
	assert.Equal(t, 4, res.Length)
	assert.Equal(t, 2, res.Count)
}

func TestSolveDOTAndTree(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "", "solve", "con", "cat", "--dict", dict, "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "digraph word_ladder {"))
	assert.Contains(t, stdout, `"con" -> "can"`)

	stdout, _, err = run(t, "", "solve", "con", "cat", "--dict", dict, "--format", "tree")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Level 2] Destination")
}

func TestSolveMaxLength(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "", "solve", "cat", "dog", "--dict", dict, "--max-length", "3")
	require.NoError(t, err)
	assert.Equal(t, output.NoLadder+"\n", stdout)
}

func TestSolveStdinDictionary(t *testing.T) {
	writeDict(t)

	stdout, _, err := run(t, testWords, "solve", "con", "cat", "--dict", "-")
	require.NoError(t, err)
	assert.Equal(t, "Found ladder: con can cat\ncon cot cat\n", stdout)
}

func TestSolveMetrics(t *testing.T) {
	dict := writeDict(t)

	_, stderr, err := run(t, "", "solve", "cat", "dog", "--dict", dict, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `wordladder_searches_total{status="found"} 1`)
	assert.Contains(t, stderr, "wordladder_dictionary_words 9")
}

func TestSolveDebugLogging(t *testing.T) {
	dict := writeDict(t)

	_, stderr, err := run(t, "", "solve", "cat", "dog", "--dict", dict, "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "search_id=")
	assert.Contains(t, stderr, "Search complete")
}

func TestSolveUnknownLength(t *testing.T) {
	dict := writeDict(t)

	_, stderr, err := run(t, "", "solve", "quack", "ducks", "--dict", dict, "--debug")
	require.Error(t, err)
	assert.Equal(t, msgNotInLexicon, validationMsg(t, err))
	assert.Contains(t, stderr, `available="[3 4]"`)
}

func TestConfigFile(t *testing.T) {
	dict := writeDict(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	body := "dictionary = \"" + dict + "\"\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	stdout, _, err := run(t, "", "solve", "con", "cat", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"count": 2`)

	// Flags win over the file
	stdout, _, err = run(t, "", "solve", "con", "cat", "--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, output.Label))
}

func TestConfigErrors(t *testing.T) {
	dict := writeDict(t)

	_, _, err := run(t, "", "solve", "cat", "dog", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicit config file must exist")

	_, _, err = run(t, "", "solve", "cat", "dog", "--dict", dict, "--format", "yaml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "solve", "cat", "dog", "--dict", dict, "--max-length", "-1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestMissingDictionary(t *testing.T) {
	writeDict(t)

	_, _, err := run(t, "", "solve", "cat", "dog", "--dict", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestNeighbors(t *testing.T) {
	dict := writeDict(t)

	stdout, _, err := run(t, "", "neighbors", "cat", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, "can cot rat\n", stdout)

	stdout, _, err = run(t, "", "neighbors", "xyz", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, "No neighbors of xyz.\n", stdout)

	stdout, _, err = run(t, "", "neighbors", "cat", "--dict", dict, "--alphabet", "or")
	require.NoError(t, err)
	assert.Equal(t, "cot rat\n", stdout)
}

func TestNeighborsJSON(t *testing.T) {
	dict := writeDict(t)

	stdout, stderr, err := run(t, "", "neighbors", "cat", "--dict", dict, "--format", "json", "--metrics")
	require.NoError(t, err)

	var got neighborsJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "cat", got.Word)
	assert.Equal(t, []string{"can", "cot", "rat"}, got.Neighbors)
	assert.Contains(t, stderr, "wordladder_neighbor_lookups_total 1")
}
