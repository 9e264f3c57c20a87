package decomposition

import (
	"sort"

	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
)

// Tree is a tree decomposition under construction or already built: a set
// of bags (small non-negative integer ids mapped to vertex sets) plus an
// undirected adjacency over those ids.
type Tree struct {
	graph  *core.Graph
	k      int
	bags   map[int]*bitset.Set
	adj    map[int]map[int]bool
	nextID int
}

// NewTree returns an empty decomposition of graph at the given treewidth
// bound k (bags may hold up to k+1 vertices).
func NewTree(graph *core.Graph, k int) *Tree {
	return &Tree{
		graph: graph,
		k:     k,
		bags:  make(map[int]*bitset.Set),
		adj:   make(map[int]map[int]bool),
	}
}

// K returns the treewidth bound this tree was constructed against.
func (t *Tree) K() int { return t.k }

// Graph returns the reference graph this tree decomposes.
func (t *Tree) Graph() *core.Graph { return t.graph }

// AddBag creates a new bag containing vs and returns its id.
// Complexity: O(1).
func (t *Tree) AddBag(vs *bitset.Set) int {
	id := t.nextID
	t.nextID++
	t.bags[id] = vs.Clone()
	t.adj[id] = make(map[int]bool)

	return id
}

// AddVertexToBag inserts v into an existing bag.
// Complexity: O(1).
func (t *Tree) AddVertexToBag(bagID, v int) error {
	bag, ok := t.bags[bagID]
	if !ok {
		return ErrUnknownBag
	}
	bag.Add(v)

	return nil
}

// AddEdge connects two bags in the tree, in both directions.
// Complexity: O(1).
func (t *Tree) AddEdge(u, v int) error {
	if _, ok := t.bags[u]; !ok {
		return ErrUnknownBag
	}
	if _, ok := t.bags[v]; !ok {
		return ErrUnknownBag
	}
	t.adj[u][v] = true
	t.adj[v][u] = true

	return nil
}

// Bags returns the bag ids, ascending.
func (t *Tree) Bags() []int {
	ids := make([]int, 0, len(t.bags))
	for id := range t.bags {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Bag returns the vertex set of a bag, or nil if bagID is unknown.
func (t *Tree) Bag(bagID int) *bitset.Set {
	return t.bags[bagID]
}

// Neighbours returns the bags adjacent to bagID, ascending.
func (t *Tree) Neighbours(bagID int) []int {
	nbs := make([]int, 0, len(t.adj[bagID]))
	for id := range t.adj[bagID] {
		nbs = append(nbs, id)
	}
	sort.Ints(nbs)

	return nbs
}

// Treewidth returns the largest bag size minus one, or -1 if the tree has
// no bags.
// Complexity: O(bags).
func (t *Tree) Treewidth() int {
	max := -1
	for _, bag := range t.bags {
		if bag.Len() > max {
			max = bag.Len()
		}
	}
	if max < 0 {
		return -1
	}

	return max - 1
}
