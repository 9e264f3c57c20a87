package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborly/treewidth/algorithms"
	"github.com/arborly/treewidth/core"
	"github.com/arborly/treewidth/driver"
)

func TestOptimalTriangleSingleBag(t *testing.T) {
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(0, 2))

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.Equal(t, 2, tree.Treewidth())
	assert.Len(t, tree.Bags(), 1)
}

func TestOptimalK4SingleBag(t *testing.T) {
	g := core.NewGraphN(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddBiEdge(i, j))
		}
	}

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.Equal(t, 3, tree.Treewidth())
	assert.Len(t, tree.Bags(), 1)
}

func TestOptimalEmptyGraphEachVertexOwnBag(t *testing.T) {
	g := core.NewGraphN(3)

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.Equal(t, 0, tree.Treewidth())
	assert.Len(t, tree.Bags(), 3)
}

func TestOptimalPathIsValidAndRespectsMinDegree(t *testing.T) {
	g := core.NewGraphN(5)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(2, 3))
	require.NoError(t, g.AddBiEdge(3, 4))

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.GreaterOrEqual(t, tree.Treewidth(), algorithms.MinDegree(g))
}

func TestOptimalTreeIsValidAndRespectsMinDegree(t *testing.T) {
	g := core.NewGraphN(5)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(0, 2))
	require.NoError(t, g.AddBiEdge(1, 3))
	require.NoError(t, g.AddBiEdge(2, 4))

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.GreaterOrEqual(t, tree.Treewidth(), algorithms.MinDegree(g))
}

func TestOptimalDisconnectedMixedComponents(t *testing.T) {
	g := core.NewGraphN(7)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(0, 2))
	require.NoError(t, g.AddBiEdge(3, 4))

	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.GreaterOrEqual(t, tree.Treewidth(), algorithms.MinDegree(g))
}

func TestOptimalSingleVertexGraph(t *testing.T) {
	g := core.NewGraphN(1)
	tree := driver.Optimal(g)
	require.True(t, tree.IsValidTree())
	assert.Equal(t, 0, tree.Treewidth())
}
