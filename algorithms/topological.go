package algorithms

import "github.com/arborly/treewidth/core"

// NoIncoming returns every vertex with an empty in-neighbourhood, in
// ascending id order.
// Complexity: O(V^2) (core.Graph.Incoming scans every row).
func NoIncoming(g *core.Graph) []int {
	var out []int
	for _, v := range g.Vertices() {
		if len(g.Incoming(v)) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// TopologicalSort returns a topological ordering of g's vertices treated
// as a directed graph, using Kahn's algorithm with deterministic FIFO
// ordering: ties among simultaneously-available zero-indegree vertices are
// broken by ascending id. ok is false iff g (as a directed graph) has a
// cycle, in which case order is nil.
// Complexity: O(V^3) on the dense representation (the O(V^2) NoIncoming
// frontier is recomputed once per processed vertex).
func TopologicalSort(g *core.Graph) (order []int, ok bool) {
	remaining := g.Clone()
	done := make(map[int]bool, g.N())

	order = make([]int, 0, g.N())
	queue := NoIncoming(remaining)

	for len(queue) > 0 {
		// Pop the smallest id: NoIncoming is ascending and this frontier
		// is recomputed from scratch every round, so concurrently-available
		// zero-indegree vertices are always processed ascending-id-first.
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		done[u] = true

		for _, v := range remaining.Outgoing(u) {
			_ = remaining.RemoveEdge(u, v)
		}

		next := NoIncoming(remaining)
		queue = queue[:0]
		for _, v := range next {
			if !done[v] {
				queue = append(queue, v)
			}
		}
	}

	if len(order) == g.N() {
		return order, true
	}

	return nil, false
}
