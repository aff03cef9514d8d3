package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/wordladder/internal/graph"
)

// RenderDOT renders the ladder graph in Graphviz DOT format.
// start and destination, when present, are drawn bold.
func RenderDOT(w io.Writer, g *graph.Graph, start, destination string) error {
	fmt.Fprintln(w, "digraph word_ladder {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintln(w, "")

	// Render nodes
	for _, node := range g.Nodes() {
		nodeID := quoteID(node.ID)
		if node.ID == start || node.ID == destination {
			fmt.Fprintf(w, "  %s [label=\"%s\", style=\"rounded,bold\"];\n", nodeID, node.ID)
		} else {
			fmt.Fprintf(w, "  %s [label=\"%s\"];\n", nodeID, node.ID)
		}
	}

	fmt.Fprintln(w, "")

	// Render edges, labelled with the changed position
	for _, edge := range g.Edges() {
		fmt.Fprintf(w, "  %s -> %s [label=\"%d\"];\n", quoteID(edge.From), quoteID(edge.To), edge.Position)
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func quoteID(id string) string {
	id = strings.ReplaceAll(id, `\`, `\\`)
	id = strings.ReplaceAll(id, `"`, `\"`)
	return "\"" + id + "\""
}
