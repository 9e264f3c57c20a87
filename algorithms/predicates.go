package algorithms

import (
	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
)

// IsClique reports whether vs induces a complete subgraph of g.
// Complexity: O(|vs|^2).
func IsClique(g *core.Graph, vs *bitset.Set) bool {
	members := vs.Slice()
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if !g.HasEdge(members[i], members[j]) {
				return false
			}
		}
	}

	return true
}

// IsConnectedComponent reports whether vs, taken as a vertex set, induces a
// single connected subgraph of g (vacuously true for the empty set).
// Complexity: O(n^2).
func IsConnectedComponent(g *core.Graph, vs *bitset.Set) bool {
	if vs.IsEmpty() {
		return true
	}

	return len(ComponentsOf(g, vs)) == 1
}

// IsSeparator reports whether vs is a vertex separator of g: removing vs
// strictly increases the number of connected components relative to g's
// own component count. A single isolated vertex (0 or 1 components overall)
// has no separator, so vs can never qualify there.
//
// This is the corrected definition: it counts components of the induced
// subgraph on V \ vs and compares against the component count of all of V,
// rather than checking connectivity of vs itself.
// Complexity: O(n^2).
func IsSeparator(g *core.Graph, vs *bitset.Set) bool {
	whole := g.VertexSet()
	before := len(ComponentsOf(g, whole))
	rest := whole.Difference(vs)
	after := len(ComponentsOf(g, rest))

	return after > before
}
