package output

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/wordladder/internal/graph"
)

// RenderTree renders the ladder graph level by level from start
func RenderTree(w io.Writer, g *graph.Graph, startID string) error {
	levels := g.BFS(startID)
	if len(levels) == 0 {
		_, err := fmt.Fprintln(w, NoLadder)
		return err
	}

	for _, level := range levels {
		fmt.Fprintf(w, "\n[Level %d] ", level.Depth)
		switch {
		case level.Depth == 0:
			fmt.Fprintf(w, "Start\n")
		case level.Depth == len(levels)-1:
			fmt.Fprintf(w, "Destination\n")
		default:
			fmt.Fprintf(w, "Intermediate\n")
		}

		for i, node := range level.Nodes {
			prefix := "└─"
			if i < len(level.Nodes)-1 {
				prefix = "├─"
			}

			fmt.Fprintf(w, "%s %s\n", prefix, node.ID)

			// Show every word this one was reached from
			for _, edge := range g.EdgesTo(node.ID) {
				fmt.Fprintf(w, "   from %s (letter %d)\n", edge.From, edge.Position+1)
			}
		}
	}

	_, err := fmt.Fprintf(w, "\nSummary: %d words, %d steps\n", g.NodeCount(), g.EdgeCount())
	return err
}
