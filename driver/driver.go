package driver

import (
	"github.com/arborly/treewidth/algorithms"
	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
	"github.com/arborly/treewidth/decomposition"
	"github.com/arborly/treewidth/separator"
)

// Optimal returns a valid tree decomposition of g, searching for the
// smallest witnessed treewidth. If g is disconnected, each connected
// component is decomposed independently (recursively) and the pieces are
// joined by a single arbitrary edge per adjacent pair of component roots.
// Complexity: dominated by the separator enumeration at each candidate k.
func Optimal(g *core.Graph) *decomposition.Tree {
	if g.N() == 0 {
		return decomposition.NewTree(g, -1)
	}
	if !algorithms.IsConnected(g) {
		return optimalDisconnected(g)
	}

	for k := algorithms.MinDegree(g); k < g.N(); k++ {
		seps := separator.NewEnumerator(g, k).Generate()
		as := &assembler{g: g, k: k, seps: seps}
		if plan, ok := as.build(g.VertexSet()); ok {
			tree := decomposition.NewTree(g, k)
			materialize(tree, plan)
			if tree.IsValidTree() {
				return tree
			}
		}
	}

	return trivialSingleBag(g)
}

// trivialSingleBag returns the fallback decomposition every graph admits:
// one bag holding every vertex, width n-1.
func trivialSingleBag(g *core.Graph) *decomposition.Tree {
	tree := decomposition.NewTree(g, g.N()-1)
	tree.AddBag(g.VertexSet())

	return tree
}

// optimalDisconnected decomposes each connected component of g on its own
// (via an induced subgraph, so component-local vertex ids stay small) and
// stitches the results together into one tree spanning all of g's vertices.
func optimalDisconnected(g *core.Graph) *decomposition.Tree {
	comps := algorithms.ComponentsOf(g, g.VertexSet())

	type piece struct {
		tree    *decomposition.Tree
		mapping []int
	}
	pieces := make([]piece, 0, len(comps))
	maxK := 0
	for _, comp := range comps {
		sub, mapping := g.Induced(comp)
		subTree := Optimal(sub)
		pieces = append(pieces, piece{tree: subTree, mapping: mapping})
		if subTree.Treewidth() > maxK {
			maxK = subTree.Treewidth()
		}
	}

	combined := decomposition.NewTree(g, maxK)
	var roots []int
	for _, p := range pieces {
		roots = append(roots, mergeInto(combined, p.tree, p.mapping, g.N()))
	}
	for i := 1; i < len(roots); i++ {
		_ = combined.AddEdge(roots[i-1], roots[i])
	}

	return combined
}

// mergeInto copies every bag and bag-edge of sub into dst, remapping each
// bag's vertex ids via mapping, and returns dst's id for sub's bag 0 (its
// recursively-chosen root, always present since sub has at least one bag).
func mergeInto(dst, sub *decomposition.Tree, mapping []int, universe int) int {
	idTranslation := make(map[int]int, len(sub.Bags()))
	for _, subID := range sub.Bags() {
		remapped := bitset.New(universe)
		sub.Bag(subID).ForEach(func(v int) { remapped.Add(mapping[v]) })
		idTranslation[subID] = dst.AddBag(remapped)
	}
	for _, subID := range sub.Bags() {
		for _, nb := range sub.Neighbours(subID) {
			if nb > subID {
				_ = dst.AddEdge(idTranslation[subID], idTranslation[nb])
			}
		}
	}

	return idTranslation[0]
}

// assembler carries the fixed inputs to the recursive separator-tree
// planning pass for one candidate k.
type assembler struct {
	g    *core.Graph
	k    int
	seps []*bitset.Set
}

// planNode is one bag of a candidate decomposition, built as plain data so
// a failed recursive attempt never touches a real decomposition.Tree.
type planNode struct {
	bag      *bitset.Set
	children []*planNode
}

// build tries to decompose region using the enumerated separators: pick one
// that is a subset of region and splits region minus itself into at least
// two components, recurse into each component unioned with the separator,
// and join the resulting subtrees under a new bag holding exactly the
// separator. If no splitting separator applies, region becomes a single
// leaf bag, which only succeeds if it still fits the width budget. Nothing
// is committed to a decomposition.Tree here — a failed branch simply
// discards its planNode, leaving no trace for the next candidate separator.
func (as *assembler) build(region *bitset.Set) (*planNode, bool) {
	for _, s := range as.seps {
		if !s.IsSubsetOf(region) {
			continue
		}
		comps := algorithms.ComponentsOf(as.g, region.Difference(s))
		if len(comps) < 2 {
			continue
		}

		children := make([]*planNode, 0, len(comps))
		success := true
		for _, c := range comps {
			child, childOK := as.build(c.Union(s))
			if !childOK {
				success = false
				break
			}
			children = append(children, child)
		}
		if !success {
			continue
		}

		return &planNode{bag: s, children: children}, true
	}

	if region.Len() > as.k+1 {
		return nil, false
	}

	return &planNode{bag: region}, true
}

// materialize commits a planNode tree into dst, adding one bag per node and
// one edge per parent-child pair.
func materialize(dst *decomposition.Tree, n *planNode) int {
	id := dst.AddBag(n.bag)
	for _, child := range n.children {
		childID := materialize(dst, child)
		_ = dst.AddEdge(id, childID)
	}

	return id
}
