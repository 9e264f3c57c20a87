// Package dimacs implements the external I/O contract: parsing a
// DIMACS-like graph description into a core.Graph, and serializing a
// decomposition.Tree back out either in a DIMACS-like tree-decomposition
// grammar or as a YAML diagnostic dump.
package dimacs
