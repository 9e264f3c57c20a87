// Package algorithms implements graph algorithms on top of core.Graph:
// traversals (BFS, DFS, topological sort), connectivity, induced
// components and the full/non-full component split the minimal-separator
// enumerator depends on, and separator/clique predicates.
//
// Every function here is pure with respect to its *core.Graph argument:
// algorithms that conceptually delete vertices (TopologicalSort,
// IsConnectedComponent) clone the graph or work over a *bitset.Set mask
// rather than mutating the caller's graph. None of these functions accept
// a context.Context or support cancellation — the solver this package
// supports is single-threaded, synchronous, and non-suspending by design,
// so there is never a goroutine on the other end of a cancel signal.
//
// Complexity (V = |vertices|), on the dense adjacency bitmap where listing
// one vertex's neighbours costs O(V):
//
//   - BFS, DFS, IsConnected: O(V^2) time, O(V) memory.
//   - TopologicalSort: O(V^3) time.
//   - ComponentsOf, ListComponents: O(V^2) per call.
package algorithms
