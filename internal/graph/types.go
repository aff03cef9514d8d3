package graph

import (
	"sort"
	"sync"
)

// Node represents a word in the ladder graph
type Node struct {
	ID       string         // The word itself
	Metadata map[string]any // Additional metadata
}

// Edge represents a single-letter substitution between two words
type Edge struct {
	From     string // Source word
	To       string // Target word
	Position int    // Index of the changed letter
}

// Graph represents a directed word graph
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*Node // Word -> Node
	edges []*Edge          // All edges
	index map[[2]string]*Edge
}

// New creates a new empty graph
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make([]*Edge, 0),
		index: make(map[[2]string]*Edge),
	}
}

// AddNode adds or updates a node in the graph
func (g *Graph) AddNode(node *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[node.ID] = node
}

// AddEdge adds an edge to the graph, creating missing endpoints.
// A second edge between the same words is ignored.
func (g *Graph) AddEdge(edge *Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]string{edge.From, edge.To}
	if _, ok := g.index[key]; ok {
		return
	}
	for _, id := range key {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = &Node{ID: id}
		}
	}
	g.index[key] = edge
	g.edges = append(g.edges, edge)
}

// GetNode retrieves a node by word
func (g *Graph) GetNode(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	node, ok := g.nodes[id]
	return node, ok
}

// HasNode checks if a word exists in the graph
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// HasEdge checks if from links directly to to
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[[2]string{from, to}]
	return ok
}

// Nodes returns all nodes sorted by word
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]*Node, 0, len(g.nodes))
	for _, node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Edges returns all edges sorted by endpoints
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	sortEdges(edges)
	return edges
}

// EdgesFrom returns all edges originating from a word
func (g *Graph) EdgesFrom(nodeID string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgesFrom(nodeID)
}

func (g *Graph) edgesFrom(nodeID string) []*Edge {
	var result []*Edge
	for _, edge := range g.edges {
		if edge.From == nodeID {
			result = append(result, edge)
		}
	}
	sortEdges(result)
	return result
}

// EdgesTo returns all edges pointing to a word
func (g *Graph) EdgesTo(nodeID string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var result []*Edge
	for _, edge := range g.edges {
		if edge.To == nodeID {
			result = append(result, edge)
		}
	}
	sortEdges(result)
	return result
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}
