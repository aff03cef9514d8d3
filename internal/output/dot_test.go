package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/wordladder/internal/graph"
	"github.com/pfrederiksen/wordladder/internal/ladder"
)

func TestRenderDOT(t *testing.T) {
	g := graph.FromLadders([]ladder.Ladder{
		{"con", "can", "cat"},
		{"con", "cot", "cat"},
	})

	var buf bytes.Buffer
	if err := RenderDOT(&buf, g, "con", "cat"); err != nil {
		t.Fatalf("RenderDOT() error = %v", err)
	}

	output := buf.String()

	expectedStrings := []string{
		"digraph word_ladder {",
		"rankdir=LR;",
		`"con" [label="con", style="rounded,bold"];`,
		`"can" [label="can"];`,
		`"con" -> "can" [label="1"];`,
		`"cot" -> "cat" [label="1"];`,
		`"can" -> "cat" [label="2"];`,
		"}",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("RenderDOT() output missing expected string: %q\nGot:\n%s", expected, output)
		}
	}
}

func TestQuoteID(t *testing.T) {
	if got := quoteID(`a"b`); got != `"a\"b"` {
		t.Errorf("quoteID() = %s", got)
	}
}
