// Package matching provides the bipartite-graph engine used to round
// fractional schedules into integral ones.
//
// The package offers:
//
//   - Graph: an undirected graph over a declared bipartition, left nodes
//     [0, left) and right nodes [left, left+right).
//   - Bipartite: a consistency check that every edge crosses the declared
//     sides (equivalent to a 2-coloring that agrees with the partition).
//   - Components: BFS connected components in deterministic order.
//   - MaximumMatching: maximum-cardinality matching via augmenting paths,
//     optionally restricted to a single component.
//
// Determinism: adjacency is kept in insertion order and all traversals use
// fixed ascending loop orders, so results are reproducible for identical
// edge sequences.
//
// Complexity: AddEdge O(deg) (duplicate suppression), Bipartite and
// Components O(V+E), MaximumMatching O(V*E) worst case - far below the
// bound in practice, since rounding graphs are near-trees.
package matching
