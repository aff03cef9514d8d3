package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/wordladder/internal/graph"
	"github.com/pfrederiksen/wordladder/internal/ladder"
	"github.com/pfrederiksen/wordladder/internal/lexicon"
	"github.com/pfrederiksen/wordladder/internal/output"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve START DEST",
		Short: "Print every shortest ladder from START to DEST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, lexicon.Normalize(args[0]), lexicon.Normalize(args[1]))
		},
	}
}

// solve validates the query against the word list, runs the search and
// renders the result in the configured format
func (a *app) solve(cmd *cobra.Command, start, dest string) error {
	if start == dest {
		return &ValidationError{Msg: msgSameWords}
	}

	lex, err := a.loadLexicon(cmd)
	if err != nil {
		return err
	}
	dict, err := lex.Dictionary(len(start))
	if err != nil {
		return err
	}
	a.reg.SetDictionarySize(dict.Len())
	if dict.Len() == 0 {
		slog.Debug("No words of this length", "length", len(start), "available", lex.Lengths())
	}

	if !dict.Contains(start) || !dict.Contains(dest) {
		return &ValidationError{Msg: msgNotInLexicon}
	}

	logger := slog.With("search_id", uuid.NewString())
	logger.Debug("Starting search",
		"start", start,
		"dest", dest,
		"dictionary", dict.Len())

	opts := []ladder.Option{
		ladder.WithContext(cmd.Context()),
		ladder.WithMaxLength(a.cfg.MaxLength),
		ladder.WithOnLevel(func(length, frontier int) {
			logger.Debug("Level reached", "length", length, "frontier", frontier)
		}),
	}
	if a.cfg.Alphabet != "" {
		opts = append(opts, ladder.WithAlphabet(a.cfg.Alphabet))
	}

	began := time.Now()
	res, err := ladder.Search(dict, start, dest, opts...)
	elapsed := time.Since(began)
	a.reg.RecordSearch(res, err, elapsed)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	logger.Debug("Search complete",
		"ladders", len(res.Ladders),
		"length", res.Stats.AnswerLength,
		"expanded", res.Stats.Expanded,
		"duration", elapsed)

	return a.render(cmd, start, dest, res)
}

func (a *app) render(cmd *cobra.Command, start, dest string, res *ladder.Result) error {
	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case "json":
		return output.RenderJSON(out, start, dest, res)
	case "dot":
		return output.RenderDOT(out, graph.FromLadders(res.Ladders), start, dest)
	case "tree":
		return output.RenderTree(out, graph.FromLadders(res.Ladders), start)
	default:
		return output.RenderText(out, res.Ladders, output.TextOptions{Styled: isTerminal(out)})
	}
}
