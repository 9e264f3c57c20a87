// Package fixtures builds canonical core.Graph instances — paths, cycles,
// complete graphs, stars, wheels, and Erdos-Renyi-style random sparse
// graphs — for use by tests, benchmarks, and the -gen flag of tdsolve.
//
// Every generator is deterministic given its arguments: vertex ids are
// assigned in ascending index order and edges are emitted in a stable,
// documented order, so a fixed seed always reproduces the same graph.
package fixtures
