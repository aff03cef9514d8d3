package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfrederiksen/wordladder/internal/ladder"
)

// Label precedes the first ladder in text output
const Label = "Found ladder: "

// NoLadder is printed when the search found nothing
const NoLadder = "No ladder found."

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// TextOptions controls text rendering
type TextOptions struct {
	Styled bool // Style the label for a terminal
}

// RenderText prints the label followed by one ladder per line, words
// separated by single spaces
func RenderText(w io.Writer, ladders []ladder.Ladder, opts TextOptions) error {
	if len(ladders) == 0 {
		_, err := fmt.Fprintln(w, NoLadder)
		return err
	}

	label := Label
	if opts.Styled {
		label = labelStyle.Render(Label)
	}
	if _, err := fmt.Fprint(w, label); err != nil {
		return err
	}
	for _, l := range ladders {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderWords prints words space separated on one line
func RenderWords(w io.Writer, words []string) error {
	_, err := fmt.Fprintln(w, ladder.Ladder(words).String())
	return err
}
