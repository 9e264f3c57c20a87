package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborly/treewidth/bitset"
	"github.com/arborly/treewidth/core"
	"github.com/arborly/treewidth/decomposition"
	"github.com/arborly/treewidth/dimacs"
)

func buildTriangleTree(t *testing.T) *decomposition.Tree {
	t.Helper()
	g := core.NewGraphN(3)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(0, 2))

	tree := decomposition.NewTree(g, 2)
	tree.AddBag(bitset.Of(3, 0, 1, 2))

	return tree
}

func TestSerializeDIMACSHeaderAndBag(t *testing.T) {
	tree := buildTriangleTree(t)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Serialize(&buf, tree, dimacs.FormatDIMACS))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "s td 1 3 3", lines[0])
	assert.Equal(t, "b 1 0 1 2", lines[1])
}

func TestSerializeDIMACSTreeEdges(t *testing.T) {
	g := core.NewGraphN(4)
	require.NoError(t, g.AddBiEdge(0, 1))
	require.NoError(t, g.AddBiEdge(1, 2))
	require.NoError(t, g.AddBiEdge(2, 3))

	tree := decomposition.NewTree(g, 1)
	b0 := tree.AddBag(bitset.Of(4, 0, 1))
	b1 := tree.AddBag(bitset.Of(4, 1, 2))
	b2 := tree.AddBag(bitset.Of(4, 2, 3))
	require.NoError(t, tree.AddEdge(b0, b1))
	require.NoError(t, tree.AddEdge(b1, b2))

	var buf bytes.Buffer
	require.NoError(t, dimacs.Serialize(&buf, tree, dimacs.FormatDIMACS))

	out := buf.String()
	assert.Contains(t, out, "s td 3 2 4")
	assert.Contains(t, out, "1 2\n")
	assert.Contains(t, out, "2 3\n")
}

func TestSerializeDefaultFormatIsDIMACS(t *testing.T) {
	tree := buildTriangleTree(t)

	var withDefault, withExplicit bytes.Buffer
	require.NoError(t, dimacs.Serialize(&withDefault, tree, ""))
	require.NoError(t, dimacs.Serialize(&withExplicit, tree, dimacs.FormatDIMACS))

	assert.Equal(t, withExplicit.String(), withDefault.String())
}

func TestSerializeUnknownFormatFails(t *testing.T) {
	tree := buildTriangleTree(t)

	var buf bytes.Buffer
	err := dimacs.Serialize(&buf, tree, dimacs.Format("bogus"))
	assert.Error(t, err)
}

func TestSerializeYAMLContainsTreewidthAndBags(t *testing.T) {
	tree := buildTriangleTree(t)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Serialize(&buf, tree, dimacs.FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "treewidth: 2")
	assert.Contains(t, out, "vertices:")
}

func TestSerializeEmptyTreeZeroMaxBagSize(t *testing.T) {
	g := core.NewGraphN(0)
	tree := decomposition.NewTree(g, -1)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Serialize(&buf, tree, dimacs.FormatDIMACS))
	assert.Equal(t, "s td 0 0 0\n", buf.String())
}
