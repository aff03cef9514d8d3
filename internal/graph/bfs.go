package graph

import "sort"

// BFSLevel represents nodes at a specific depth level
type BFSLevel struct {
	Depth int
	Nodes []*Node
}

// BFS performs breadth-first traversal from a starting word.
// Nodes within a level are sorted by word.
func (g *Graph) BFS(startID string) []BFSLevel {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[startID]; !ok {
		return nil
	}

	adj := g.adjacency()
	visited := map[string]bool{startID: true}
	levels := make([]BFSLevel, 0)
	queue := []string{startID}
	currentDepth := 0

	for len(queue) > 0 {
		levelSize := len(queue)
		level := BFSLevel{
			Depth: currentDepth,
			Nodes: make([]*Node, 0, levelSize),
		}

		for i := 0; i < levelSize; i++ {
			nodeID := queue[0]
			queue = queue[1:]
			level.Nodes = append(level.Nodes, g.nodes[nodeID])

			for _, next := range adj[nodeID] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Slice(level.Nodes, func(i, j int) bool { return level.Nodes[i].ID < level.Nodes[j].ID })
		levels = append(levels, level)
		currentDepth++
	}

	return levels
}

// Distance returns the number of edges on a shortest path from one word to
// another, and false if to is unreachable
func (g *Graph) Distance(from, to string) (int, bool) {
	for _, level := range g.BFS(from) {
		for _, node := range level.Nodes {
			if node.ID == to {
				return level.Depth, true
			}
		}
	}
	return 0, false
}

// adjacency builds sorted successor lists; callers hold the read lock
func (g *Graph) adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for _, edge := range g.edges {
		adj[edge.From] = append(adj[edge.From], edge.To)
	}
	for id := range adj {
		sort.Strings(adj[id])
	}
	return adj
}
