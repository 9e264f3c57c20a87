package algorithms

import (
	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
)

// Neighbours returns the closed neighbourhood of s: s itself, plus every
// vertex adjacent to some member of s.
// Complexity: O(|s| * n/64).
func Neighbours(g *core.Graph, s *bitset.Set) *bitset.Set {
	out := s.Clone()
	s.ForEach(func(u int) {
		out = out.Union(g.OutgoingSet(u))
	})

	return out
}

// ComponentsOf returns the connected components of the subgraph induced by
// vs, each as a *bitset.Set. Components are returned in order of their
// smallest member's ascending id.
// Complexity: O(n^2) (core.Graph.Outgoing is O(n) per expanded vertex).
func ComponentsOf(g *core.Graph, vs *bitset.Set) []*bitset.Set {
	remaining := vs.Clone()
	var comps []*bitset.Set

	for !remaining.IsEmpty() {
		seed := remaining.Slice()[0]
		comp := bitset.New(g.N())
		frontier := []int{seed}
		comp.Add(seed)
		remaining.Remove(seed)

		for len(frontier) > 0 {
			u := frontier[0]
			frontier = frontier[1:]
			for _, v := range g.Outgoing(u) {
				if remaining.Contains(v) {
					comp.Add(v)
					remaining.Remove(v)
					frontier = append(frontier, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ListComponents partitions the connected components of the subgraph
// induced by vs \ separator into full components (whose neighbourhood
// covers all of separator) and non-full components (whose neighbourhood
// misses some vertex of separator). separator need not be a minimal
// separator; it is treated as a plain vertex mask to remove before
// computing components.
// Complexity: O(n^2) for the components plus one Neighbours call per
// component.
func ListComponents(g *core.Graph, vs, separator *bitset.Set) (fulls, nonFulls []*bitset.Set) {
	rest := vs.Difference(separator)
	for _, comp := range ComponentsOf(g, rest) {
		if separator.IsSubsetOf(Neighbours(g, comp)) {
			fulls = append(fulls, comp)
		} else {
			nonFulls = append(nonFulls, comp)
		}
	}

	return fulls, nonFulls
}

// MinDegree returns the minimum vertex degree of g, or 0 for the empty
// graph.
// Complexity: O(n^2).
func MinDegree(g *core.Graph) int {
	min := -1
	for _, u := range g.Vertices() {
		d := len(g.Outgoing(u))
		if min == -1 || d < min {
			min = d
		}
	}
	if min == -1 {
		return 0
	}

	return min
}
