package matching

import "fmt"

// Graph is an undirected graph over left+right nodes with a declared
// bipartition: nodes [0, left) form the left side, [left, left+right) the
// right side. AddEdge does not enforce the bipartition - Bipartite reports
// whether every edge respects it, so construction bugs surface as a check
// failure instead of silently corrupting downstream algorithms.
type Graph struct {
	left  int     // size of the left side
	right int     // size of the right side
	adj   [][]int // adjacency lists in insertion order, symmetric
}

// NewGraph creates an empty graph with the given side sizes.
// Returns ErrBadShape unless left > 0 and right > 0.
// Complexity: O(left+right).
func NewGraph(left, right int) (*Graph, error) {
	if left <= 0 || right <= 0 {
		return nil, ErrBadShape
	}

	return &Graph{left: left, right: right, adj: make([][]int, left+right)}, nil
}

// Left returns the size of the left side. Complexity: O(1).
func (g *Graph) Left() int { return g.left }

// Right returns the size of the right side. Complexity: O(1).
func (g *Graph) Right() int { return g.right }

// Order returns the total node count. Complexity: O(1).
func (g *Graph) Order() int { return g.left + g.right }

// AddEdge inserts the undirected edge {u, v} given as node indices.
// Self-loops are rejected as out-of-range pairs; duplicate edges are
// silently ignored. Returns ErrOutOfRange on invalid endpoints.
// Complexity: O(deg(u)) for duplicate suppression.
func (g *Graph) AddEdge(u, v int) error {
	n := g.Order()
	if u < 0 || u >= n || v < 0 || v >= n || u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrOutOfRange)
	}
	for _, w := range g.adj[u] {
		if w == v {
			return nil // already present
		}
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// Degree returns the number of neighbors of node u, or 0 for invalid u.
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.Order() {
		return 0
	}

	return len(g.adj[u])
}

// Bipartite reports whether every edge crosses the declared sides.
// This is the 2-coloring check with colors fixed by the partition: an edge
// inside one side makes any side-consistent 2-coloring impossible.
// Complexity: O(V+E).
func (g *Graph) Bipartite() bool {
	for u := 0; u < g.left; u++ {
		for _, v := range g.adj[u] {
			if v < g.left {
				return false
			}
		}
	}
	for u := g.left; u < g.Order(); u++ {
		for _, v := range g.adj[u] {
			if v >= g.left {
				return false
			}
		}
	}

	return true
}
