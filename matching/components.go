package matching

// Components finds all connected components of the graph.
// Returns one slice of node indices per component; components appear in
// ascending order of their smallest node, and nodes inside a component in
// BFS discovery order from that node. Isolated nodes form singleton
// components - callers that only care about matchable structure skip
// components of size < 2.
//
// Time:   O(V+E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) Components() [][]int {
	total := g.Order()
	seen := make([]bool, total)
	var comps [][]int

	for start := 0; start < total; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
