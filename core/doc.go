// Package core defines the central Graph type: an undirected graph over
// contiguous integer vertex ids [0,n), backed by a dense adjacency bitmap.
//
// Vertex ids are assigned by order of creation and are immutable once
// assigned. Edges are unordered pairs {u,v}, u != v; there are no
// multi-edges. Input adapters are expected to call AddBiEdge so that
// Outgoing and Incoming always agree, matching the symmetric adjacency
// this solver's algorithms assume.
//
// The dense bitmap representation (one bitset.Set row per vertex) costs
// O(n^2) bits regardless of sparsity, trading memory for O(1) adjacency
// tests and cheap row-clearing on DisconnectVertex — acceptable at the
// bench sizes this solver targets (hundreds of vertices).
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex id outside [0,n) was referenced.
//	ErrSelfLoop         - AddEdge/AddBiEdge was called with u == v.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex id
	// outside the graph's current [0,n) range.
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")
)
