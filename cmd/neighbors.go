package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/wordladder/internal/ladder"
	"github.com/pfrederiksen/wordladder/internal/lexicon"
	"github.com/pfrederiksen/wordladder/internal/output"
)

// neighborsJSON is the json form of a neighbors lookup
type neighborsJSON struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors WORD",
		Short: "Print the dictionary words one letter away from WORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.neighbors(cmd, lexicon.Normalize(args[0]))
		},
	}
}

func (a *app) neighbors(cmd *cobra.Command, word string) error {
	if word == "" {
		return &ValidationError{Msg: "word is empty"}
	}

	lex, err := a.loadLexicon(cmd)
	if err != nil {
		return err
	}
	dict, err := lex.Dictionary(len(word))
	if err != nil {
		return err
	}
	a.reg.SetDictionarySize(dict.Len())

	alphabet := a.cfg.Alphabet
	if alphabet == "" {
		alphabet = ladder.DefaultAlphabet
	}
	words := ladder.NeighborsIn(word, dict, alphabet)
	a.reg.NeighborLookups.Inc()

	out := cmd.OutOrStdout()
	if a.cfg.Format == "json" {
		if words == nil {
			words = []string{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(neighborsJSON{Word: word, Neighbors: words})
	}
	if len(words) == 0 {
		_, err := fmt.Fprintf(out, "No neighbors of %s.\n", word)
		return err
	}
	return output.RenderWords(out, words)
}
