package fixtures

import "errors"

// Sentinel errors for fixture generators.
var (
	// ErrTooFewVertices indicates n was below a generator's minimum.
	ErrTooFewVertices = errors.New("fixtures: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("fixtures: probability out of range")
)
