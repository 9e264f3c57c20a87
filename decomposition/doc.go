// Package decomposition implements the tree decomposition witness: a
// mapping from bag id to vertex set plus an undirected adjacency over bag
// ids, together with the six-property validator that certifies a Tree is a
// genuine tree decomposition of a reference graph of a given width.
package decomposition
