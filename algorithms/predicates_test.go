package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborly/treewidth/algorithms"
	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
)

func TestIsCliqueTriangle(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(0, 2))

	assert.True(t, algorithms.IsClique(g, g.VertexSet()))
}

func TestIsCliqueMissingEdge(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))

	assert.False(t, algorithms.IsClique(g, g.VertexSet()))
}

func TestIsCliqueSingletonAndEmpty(t *testing.T) {
	g := core.NewGraphN(2)
	assert.True(t, algorithms.IsClique(g, bitset.Of(2, 0)))
	assert.True(t, algorithms.IsClique(g, bitset.New(2)))
}

func TestIsConnectedComponentPath(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))

	assert.True(t, algorithms.IsConnectedComponent(g, g.VertexSet()))
}

func TestIsConnectedComponentDisjointMask(t *testing.T) {
	g := core.NewGraphN(4)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(2, 3))

	assert.False(t, algorithms.IsConnectedComponent(g, g.VertexSet()))
}

func TestIsConnectedComponentEmptyVacuouslyTrue(t *testing.T) {
	g := core.NewGraphN(3)
	assert.True(t, algorithms.IsConnectedComponent(g, bitset.New(3)))
}

// TestIsSeparatorSpecExample mirrors the specification's worked example: a
// 3-vertex path 0-1-2, where {1} is the unique minimal separator.
func TestIsSeparatorSpecExample(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))

	assert.True(t, algorithms.IsSeparator(g, bitset.Of(3, 1)))
	assert.False(t, algorithms.IsSeparator(g, bitset.Of(3, 0)))
}

func TestIsSeparatorFalseOnClique(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(0, 2))

	assert.False(t, algorithms.IsSeparator(g, bitset.Of(3, 1)))
}

func TestIsSeparatorFalseOnAlreadyDisconnectedGraph(t *testing.T) {
	g := core.NewGraphN(4)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(2, 3))

	assert.False(t, algorithms.IsSeparator(g, bitset.Of(4, 0)))
}
