// Package driver implements the outer search loop: iterate the treewidth
// bound k upward from the graph's minimum degree, enumerate minimal
// separators at each k, and try to assemble a valid tree decomposition from
// them. The first k that yields a valid witness wins; if none below n
// succeeds the trivial single-bag decomposition is returned.
//
// The composition step from enumerated separators to an assembled tree is
// left unresolved by the source this package is built from — no concrete
// dynamic-programming protocol over potential maximal cliques is specified.
// Rather than attempt that unverified construction, Optimal assembles a
// decomposition directly via recursive separator-tree splitting: pick an
// enumerated separator that disconnects the current region into at least
// two pieces, recurse on each piece unioned with the separator, and join
// the resulting subtrees under a bag holding exactly the separator. Every
// tree this produces is checked with decomposition.IsValidTree before it is
// accepted, so an unsound split can only cost a wasted candidate, never a
// false witness.
package driver
