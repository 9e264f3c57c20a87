package separator

import (
	"fmt"

	"github.com/arborly/treewidth/algorithms"
	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
)

// Enumerator holds the state for one nibble-and-conquer run: a snapshot of
// the graph, the cardinality bound k, the growing a_excluded bookkeeping
// set, and the accumulator of separators found so far.
type Enumerator struct {
	g         *core.Graph
	k         int
	aExcluded *bitset.Set
	found     []*bitset.Set
}

// NewEnumerator clones g so the caller remains free to mutate the original
// graph after construction.
// Complexity: O(n^2/64) for the clone.
func NewEnumerator(g *core.Graph, k int) *Enumerator {
	return &Enumerator{
		g:         g.Clone(),
		k:         k,
		aExcluded: bitset.New(g.N()),
	}
}

// Generate returns every minimal vertex separator of the enumerator's graph
// with cardinality at most k. Returns nil if k < 0. The result contains no
// duplicates: a_excluded canonicalizes each separator to exactly one source
// vertex.
// Complexity: exponential in the worst case, bounded by the branching
// factor of the nibble recursion.
func (e *Enumerator) Generate() []*bitset.Set {
	if e.k < 0 {
		return nil
	}

	n := e.g.N()
	ordered := bitset.SortByKey(e.g.Vertices(), func(v int) int { return len(e.g.Outgoing(v)) })
	e.aExcluded = bitset.New(n)
	e.found = nil

	for _, a := range ordered {
		aSet, bSet := e.generateSides(a)
		sFixed := e.fixedSeparator(aSet)
		if sFixed.Len() > e.k {
			continue
		}
		sep := algorithms.Neighbours(e.g, aSet)
		e.generateMinimalSeparator(a, aSet, bSet, sep, sFixed)
		e.aExcluded.Add(a)
	}

	return e.found
}

// generateSides splits V into {a} and V minus the closed neighbourhood of a.
func (e *Enumerator) generateSides(a int) (aSet, bSet *bitset.Set) {
	aSet = bitset.Of(e.g.N(), a)
	bSet = e.g.VertexSet().Difference(algorithms.Neighbours(e.g, aSet))

	return aSet, bSet
}

// fixedSeparator returns the part of a_set's closed neighbourhood already
// committed to a_excluded from an earlier outer-loop iteration.
func (e *Enumerator) fixedSeparator(aSet *bitset.Set) *bitset.Set {
	return algorithms.Neighbours(e.g, aSet).Intersect(e.aExcluded)
}

// generateMinimalSeparator partitions rest (relative to separator) into full
// and non-full components and recurses into each.
func (e *Enumerator) generateMinimalSeparator(a int, aSet, rest, separator, sFixed *bitset.Set) {
	fulls, nonFulls := algorithms.ListComponents(e.g, rest, separator)

	for _, full := range fulls {
		e.branch(a, aSet, full, separator, sFixed)
	}

	for _, nonFull := range nonFulls {
		sep := algorithms.Neighbours(e.g, nonFull)
		if !sFixed.IsSubsetOf(sep) {
			continue
		}

		rest1 := e.g.VertexSet().Difference(nonFull).Difference(separator)
		for _, c := range algorithms.ComponentsOf(e.g, rest1) {
			if !c.Contains(a) {
				continue
			}
			if c.IsDisjoint(e.aExcluded) {
				e.branch(a, c, nonFull, sep, sFixed)
			}
			break
		}
	}
}

// branch is the nibble step: prune by size, assert the structural
// invariants, record the separator, then bipartition the unfixed remainder
// of the separator around the vertex with the largest neighbourhood in
// b_set.
func (e *Enumerator) branch(a int, aSet, bSet, separator, sFixed *bitset.Set) {
	n := e.g.N()
	nA := aSet.Len()
	nS := separator.Len()

	if nS <= e.k && nA > (n-nS)/2 {
		return
	}
	if nS > e.k && nA+(nS-e.k) > (n-e.k)/2 {
		return
	}
	if nS > e.k {
		return
	}

	if !sFixed.IsSubsetOf(separator) {
		panic(fmt.Sprintf("separator: invariant violated: s_fixed %s not a subset of separator %s", sFixed, separator))
	}
	if sFixed.Len() > e.k {
		panic(fmt.Sprintf("separator: invariant violated: |s_fixed|=%d exceeds k=%d", sFixed.Len(), e.k))
	}
	if !algorithms.Neighbours(e.g, aSet).Equals(separator) {
		panic(fmt.Sprintf("separator: invariant violated: N(a_set)=%s != separator %s", algorithms.Neighbours(e.g, aSet), separator))
	}
	if !algorithms.Neighbours(e.g, bSet).Equals(separator) {
		panic(fmt.Sprintf("separator: invariant violated: N(b_set)=%s != separator %s", algorithms.Neighbours(e.g, bSet), separator))
	}

	e.found = append(e.found, separator.Clone())

	if nS == e.k {
		return
	}

	toDecide := separator.Difference(sFixed)
	if !toDecide.IsDisjoint(e.aExcluded) {
		panic(fmt.Sprintf("separator: invariant violated: to_decide %s intersects a_excluded %s", toDecide, e.aExcluded))
	}
	if toDecide.IsEmpty() {
		return
	}

	v := e.largestNeighbourhoodVertex(toDecide, bSet)
	vSet := bitset.Of(n, v)
	vNb := algorithms.Neighbours(e.g, vSet)
	rest := bSet.Difference(vNb)
	nB := vNb.Difference(separator).Difference(aSet)
	separator1 := separator.Difference(vSet).Union(nB)
	sFixed1 := sFixed.Union(nB.Intersect(e.aExcluded))

	if sFixed1.Len() <= e.k {
		e.generateMinimalSeparator(a, aSet.Union(vSet), rest, separator1, sFixed1)
	}
	if sFixed.Len() < e.k {
		e.branch(a, aSet, bSet, separator, sFixed.Union(vSet))
	}
}

// largestNeighbourhoodVertex returns the member of toDecide whose closed
// neighbourhood overlaps set the most, ties broken by smallest id.
func (e *Enumerator) largestNeighbourhoodVertex(toDecide, set *bitset.Set) int {
	best := -1
	bestDegree := -1
	for _, v := range toDecide.Slice() {
		degree := algorithms.Neighbours(e.g, bitset.Of(e.g.N(), v)).Intersect(set).Len()
		if degree > bestDegree {
			best = v
			bestDegree = degree
		}
	}

	return best
}
