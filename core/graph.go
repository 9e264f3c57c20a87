package core

import "github.com/arborly/treewidth/bitset"

// Edge is an unordered pair {U,V} with U != V.
type Edge struct {
	U, V int
}

// Graph is an undirected graph over vertex ids [0,n), backed by a dense
// adjacency bitmap (one bitset.Set row per vertex).
type Graph struct {
	n    int
	rows []*bitset.Set // rows[u] = outgoing/incoming neighbours of u (symmetric)
}

// NewGraph returns an empty graph (n=0). Call AddVertex to grow it.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// NewGraphN returns a graph with n isolated vertices [0,n).
// Complexity: O(n^3), from n successive AddVertex calls.
func NewGraphN(n int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return g
}

// N returns the number of vertices.
// Complexity: O(1).
func (g *Graph) N() int { return g.n }

// Vertices returns the vertex ids [0,n) as a slice, in ascending order.
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// VertexSet returns the vertex ids [0,n) as a bitset.Set.
// Complexity: O(n).
func (g *Graph) VertexSet() *bitset.Set {
	return bitset.Full(g.n)
}

// AddVertex appends a new vertex and returns its id.
// Stage 1 (Grow): extend every existing row's universe by one bit.
// Stage 2 (Append): add a fresh, empty row for the new vertex.
// Complexity: O(n^2) per call, O(n^3) total for n AddVertex calls — each of
// the n existing rows is copied member by member, O(n) per row.
func (g *Graph) AddVertex() int {
	newN := g.n + 1
	grown := make([]*bitset.Set, newN)
	for i := 0; i < g.n; i++ {
		row := bitset.New(newN)
		g.rows[i].ForEach(func(v int) { row.Add(v) })
		grown[i] = row
	}
	grown[g.n] = bitset.New(newN)
	g.rows = grown
	g.n = newN

	return g.n - 1
}

func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= g.n {
		return ErrVertexOutOfRange
	}

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}

	return g.rows[u].Contains(v)
}

// AddEdge inserts the directed arc u->v. For an undirected graph, callers
// should use AddBiEdge (which calls AddEdge once per direction); AddEdge on
// its own builds the directed graphs TopologicalSort and NoIncoming work on.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.rows[u].Add(v)

	return nil
}

// AddBiEdge inserts both u->v and v->u, the representation every input
// adapter is expected to use so Outgoing and Incoming always agree.
// Complexity: O(1).
func (g *Graph) AddBiEdge(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}

	return g.AddEdge(v, u)
}

// RemoveEdge deletes the directed arc u->v, if present. The reverse arc
// v->u, if it was separately installed (undirected edges are stored as
// two directed arcs via AddBiEdge), is left untouched.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.rows[u].Remove(v)

	return nil
}

// DisconnectVertex removes every edge incident to u, in either direction.
// Complexity: O(n).
func (g *Graph) DisconnectVertex(u int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	g.rows[u] = bitset.New(g.n)
	for v := 0; v < g.n; v++ {
		if v != u {
			g.rows[v].Remove(u)
		}
	}

	return nil
}

// Outgoing returns u's neighbours, ascending.
// Complexity: O(n).
func (g *Graph) Outgoing(u int) []int {
	if g.checkVertex(u) != nil {
		return nil
	}

	return g.rows[u].Slice()
}

// OutgoingSet returns u's neighbours as a bitset.Set.
// Complexity: O(n/64).
func (g *Graph) OutgoingSet(u int) *bitset.Set {
	if g.checkVertex(u) != nil {
		return bitset.New(g.n)
	}

	return g.rows[u].Clone()
}

// Incoming returns vertices with an edge to u. Identical to Outgoing for
// graphs built exclusively via AddBiEdge (the undirected contract this
// solver relies on).
// Complexity: O(n).
func (g *Graph) Incoming(u int) []int {
	if g.checkVertex(u) != nil {
		return nil
	}
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.rows[v].Contains(u) {
			out = append(out, v)
		}
	}

	return out
}

// Edges returns every undirected edge {u,v}, u<v, ascending.
// Complexity: O(n^2).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		g.rows[u].ForEach(func(v int) {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
		})
	}

	return out
}

// Clone returns an independent deep copy of g.
// Complexity: O(n^2/64).
func (g *Graph) Clone() *Graph {
	out := &Graph{n: g.n, rows: make([]*bitset.Set, g.n)}
	for i, row := range g.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// Induced returns the subgraph induced by vs, with vertices renumbered to
// the contiguous range [0, vs.Len()), plus the mapping from a new id back
// to its original one (mapping[i] is the i-th member of vs in ascending
// order).
// Complexity: O(n^2/64).
func (g *Graph) Induced(vs *bitset.Set) (*Graph, []int) {
	mapping := vs.Slice()
	index := make(map[int]int, len(mapping))
	for i, v := range mapping {
		index[v] = i
	}

	sub := NewGraphN(len(mapping))
	for i, u := range mapping {
		for _, v := range g.Outgoing(u) {
			if j, ok := index[v]; ok && j > i {
				_ = sub.AddBiEdge(i, j)
			}
		}
	}

	return sub, mapping
}
