// Package bitset provides Set, a fixed-universe, word-parallel set of
// vertex identifiers in [0,n).
//
// Set is the VertexSet of the treewidth solver: union, intersection,
// difference, subset, and disjointness all run in O(words) instead of the
// O(n) hash-probe cost a map[int]struct{} would pay, and the backing store
// is a single flat []uint64 slice rather than a pointer-chasing map —
// directly modeled on the dense, flat-slice backing store idiom used
// elsewhere in this codebase for numeric matrices.
//
// All Sets sharing the same universe size n may be freely combined; mixing
// Sets of different universe sizes panics, the same way combining
// differently-shaped matrices would.
package bitset
