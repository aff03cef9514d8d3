package graph

import "github.com/pfrederiksen/wordladder/internal/ladder"

// FromLadders builds the union of a ladder set: every word is a node and
// every consecutive pair is a directed edge. Each node records the index at
// which it appears in the ladders under the "step" metadata key.
func FromLadders(ladders []ladder.Ladder) *Graph {
	g := New()
	for _, l := range ladders {
		for i, word := range l {
			if !g.HasNode(word) {
				g.AddNode(&Node{ID: word, Metadata: map[string]any{"step": i}})
			}
			if i > 0 {
				g.AddEdge(&Edge{From: l[i-1], To: word, Position: ChangedPosition(l[i-1], word)})
			}
		}
	}
	return g
}

// FromDictionary makes the implicit substitution graph of a dictionary
// explicit. Edges run both ways between every pair of neighbors.
func FromDictionary(dict *ladder.Dictionary, alphabet string) *Graph {
	if alphabet == "" {
		alphabet = ladder.DefaultAlphabet
	}
	g := New()
	for _, word := range dict.Words() {
		if !g.HasNode(word) {
			g.AddNode(&Node{ID: word})
		}
		for _, nbr := range ladder.NeighborsIn(word, dict, alphabet) {
			g.AddEdge(&Edge{From: word, To: nbr, Position: ChangedPosition(word, nbr)})
		}
	}
	return g
}

// ChangedPosition returns the first index at which a and b differ, or -1
// if they are equal up to the shorter length
func ChangedPosition(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
