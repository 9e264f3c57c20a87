// Package separator implements the nibble-and-conquer minimal vertex
// separator enumerator: given a graph G and a cardinality bound k, it finds
// every minimal separator of G with size at most k.
//
// The algorithm processes vertices in ascending degree order. For each
// vertex a it grows a candidate "a-side" of a separator by nibbling one
// unfixed separator vertex at a time, recursively branching into "move v to
// the a-side" and "keep v pinned to the separator" cases. An a_excluded
// bookkeeping set ensures each minimal separator is emitted exactly once,
// from the canonical (smallest-degree) vertex on its smaller side.
//
// The structural invariants asserted inside branch (s_fixed subset of
// separator, neighbourhoods matching the claimed separator, and so on) are
// sanity checks, not data validation: a violation means the recursion has a
// bug, not that the input graph is malformed, so Enumerator panics rather
// than returning an error.
package separator
