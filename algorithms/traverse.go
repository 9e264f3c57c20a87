package algorithms

import "github.com/arborly/treewidth/core"

// BFS returns the order of first visit starting from u: every vertex
// reachable from u exactly once, u first. Neighbours are enqueued in
// ascending id order (core.Graph.Outgoing already returns them sorted),
// giving a fully deterministic visit order.
// Complexity: O(V^2) (core.Graph.Outgoing is O(V) per visited vertex).
func BFS(g *core.Graph, u int) []int {
	order := make([]int, 0, g.N())
	seen := make(map[int]bool, g.N())
	queue := []int{u}
	seen[u] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range g.Outgoing(v) {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return order
}

// DFS returns the order of first visit starting from u using an explicit
// stack (no recursion, so depth is bounded only by available memory).
// Neighbours are pushed in descending order so the smallest unvisited
// neighbour is popped and expanded first, matching the deterministic
// tie-break BFS uses.
// Complexity: O(V^2) (core.Graph.Outgoing is O(V) per visited vertex).
func DFS(g *core.Graph, u int) []int {
	order := make([]int, 0, g.N())
	seen := make(map[int]bool, g.N())
	stack := []int{u}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			continue
		}
		seen[v] = true
		order = append(order, v)

		nbs := g.Outgoing(v)
		for i := len(nbs) - 1; i >= 0; i-- {
			if !seen[nbs[i]] {
				stack = append(stack, nbs[i])
			}
		}
	}

	return order
}

// IsConnected reports whether g is connected, i.e. DFS(g,0) reaches every
// vertex. Returns true for the empty graph (vacuously).
// Complexity: O(V^2).
func IsConnected(g *core.Graph) bool {
	if g.N() == 0 {
		return true
	}

	return len(DFS(g, 0)) == g.N()
}
