package matching

import (
	"fmt"
	"sort"
)

// MaximumMatching computes a maximum-cardinality matching via repeated
// augmenting-path search (the unit-capacity specialization of the
// Ford-Fulkerson scheme: one alternating DFS per unmatched left node).
//
// component restricts the search to the given node set; nil means the whole
// graph. Members must be valid node indices (ErrOutOfRange otherwise).
// Because components are vertex-disjoint, matching each component of a graph
// independently yields a maximum matching of the whole graph.
//
// Returns matched pairs in side-local indices, sorted by Left ascending.
// Deterministic: augmenting order follows ascending left nodes and
// insertion-ordered adjacency.
//
// Time:   O(V*E) worst case (V augmentations, O(E) DFS each).
// Memory: O(V).
func (g *Graph) MaximumMatching(component []int) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	in := make([]bool, g.Order())
	if component == nil {
		for i := range in {
			in[i] = true
		}
	} else {
		for _, u := range component {
			if u < 0 || u >= g.Order() {
				return nil, fmt.Errorf("component member %d: %w", u, ErrOutOfRange)
			}
			in[u] = true
		}
	}

	// matchR[r] is the left node matched to right-side index r, or -1.
	matchR := make([]int, g.right)
	for r := range matchR {
		matchR[r] = -1
	}

	for u := 0; u < g.left; u++ {
		if !in[u] {
			continue
		}
		// One alternating DFS per left node; visited is per augmentation.
		visited := make([]bool, g.right)
		g.augment(u, in, visited, matchR)
	}

	var edges []Edge
	for r, u := range matchR {
		if u >= 0 {
			edges = append(edges, Edge{Left: u, Right: r})
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Left < edges[j].Left })

	return edges, nil
}

// augment tries to extend the matching with an alternating path from left
// node u. Standard Kuhn step: claim a free right node, or recursively evict
// the current holder of a taken one. Complexity: O(E) per call.
func (g *Graph) augment(u int, in, visited []bool, matchR []int) bool {
	for _, v := range g.adj[u] {
		if v < g.left || !in[v] {
			continue // same-side edge or outside the component
		}
		r := v - g.left
		if visited[r] {
			continue
		}
		visited[r] = true
		if matchR[r] < 0 || g.augment(matchR[r], in, visited, matchR) {
			matchR[r] = u

			return true
		}
	}

	return false
}
