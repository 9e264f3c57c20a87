package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/arborly/treewidth/core"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
	minSparseNodes   = 1
)

// Path returns the simple path P_n: vertices 0..n-1 joined by edges (i-1,i).
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g := core.NewGraphN(n)
	for i := 1; i < n; i++ {
		if err := g.AddBiEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("Path: AddBiEdge(%d,%d): %w", i-1, i, err)
		}
	}

	return g, nil
}

// Cycle returns the simple cycle C_n: vertices 0..n-1 joined in a ring,
// edge (n-1,0) closing it.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g := core.NewGraphN(n)
	for i := 0; i < n; i++ {
		if err := g.AddBiEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddBiEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Complete returns the complete graph K_n: every unordered pair {i,j},
// i<j, joined by an edge.
// Complexity: O(n^2).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g := core.NewGraphN(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddBiEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddBiEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Star returns a star topology with n vertices: hub 0 and n-1 leaves
// 1..n-1, each joined to the hub.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	g := core.NewGraphN(n)
	for i := 1; i < n; i++ {
		if err := g.AddBiEdge(0, i); err != nil {
			return nil, fmt.Errorf("Star: AddBiEdge(0,%d): %w", i, err)
		}
	}

	return g, nil
}

// Wheel returns a wheel graph with n vertices: hub 0 joined to every rim
// vertex, and the rim vertices 1..n-1 joined in a cycle among themselves.
// n must be at least 4 so the rim forms a cycle of at least 3 vertices.
// Complexity: O(n).
func Wheel(n int) (*core.Graph, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}

	g := core.NewGraphN(n)
	rim := n - 1
	for i := 1; i < n; i++ {
		if err := g.AddBiEdge(0, i); err != nil {
			return nil, fmt.Errorf("Wheel: AddBiEdge(0,%d): %w", i, err)
		}
	}
	for i := 0; i < rim; i++ {
		u := 1 + i
		v := 1 + (i+1)%rim
		if err := g.AddBiEdge(u, v); err != nil {
			return nil, fmt.Errorf("Wheel: AddBiEdge(%d,%d): %w", u, v, err)
		}
	}

	return g, nil
}

// Sparse samples an Erdos-Renyi-like graph over n vertices: each unordered
// pair {i,j}, i<j, is an independent Bernoulli trial with probability p,
// tried in stable (i asc, j asc) order against a rand.Rand seeded with
// seed so the result is reproducible.
// Complexity: O(n^2).
func Sparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("Sparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewVertices)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("Sparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	g := core.NewGraphN(n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddBiEdge(i, j); err != nil {
					return nil, fmt.Errorf("Sparse: AddBiEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
