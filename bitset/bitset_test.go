package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborly/treewidth/bitset"
)

func TestAddContainsRemove(t *testing.T) {
	s := bitset.New(5)
	assert.True(t, s.IsEmpty())
	s.Add(2)
	s.Add(4)
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(0))
	assert.Equal(t, 2, s.Len())

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 1, s.Len())
}

func TestOfAndSlice(t *testing.T) {
	s := bitset.Of(6, 5, 1, 3)
	assert.Equal(t, []int{1, 3, 5}, s.Slice())
}

func TestFull(t *testing.T) {
	s := bitset.Full(4)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Slice())
}

func TestSetAlgebra(t *testing.T) {
	a := bitset.Of(8, 0, 1, 2, 3)
	b := bitset.Of(8, 2, 3, 4, 5)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, a.Union(b).Slice())
	assert.Equal(t, []int{2, 3}, a.Intersect(b).Slice())
	assert.Equal(t, []int{0, 1}, a.Difference(b).Slice())
	assert.False(t, a.IsSubsetOf(b))
	assert.True(t, bitset.Of(8, 2, 3).IsSubsetOf(a))
	assert.False(t, a.IsDisjoint(b))
	assert.True(t, bitset.Of(8, 6, 7).IsDisjoint(a))
}

func TestEquals(t *testing.T) {
	a := bitset.Of(4, 0, 1)
	b := bitset.Of(4, 1, 0)
	c := bitset.Of(4, 0, 2)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestCloneIndependence(t *testing.T) {
	a := bitset.Of(4, 0)
	b := a.Clone()
	b.Add(1)
	assert.False(t, a.Contains(1))
	assert.True(t, b.Contains(1))
}

func TestSingle(t *testing.T) {
	s := bitset.Of(4, 2)
	assert.Equal(t, 2, s.Single())
}

func TestSinglePanicsOnNonSingleton(t *testing.T) {
	require.Panics(t, func() {
		bitset.New(4).Single()
	})
}

func TestUniverseMismatchPanics(t *testing.T) {
	a := bitset.New(3)
	b := bitset.New(4)
	require.Panics(t, func() {
		a.Union(b)
	})
}

func TestOutOfRangePanics(t *testing.T) {
	s := bitset.New(3)
	require.Panics(t, func() {
		s.Add(3)
	})
	require.Panics(t, func() {
		s.Contains(-1)
	})
}

func TestSortByKey(t *testing.T) {
	ids := []int{0, 1, 2, 3, 4}
	degree := map[int]int{0: 2, 1: 1, 2: 1, 3: 0, 4: 3}
	sorted := bitset.SortByKey(ids, func(v int) int { return degree[v] })
	assert.Equal(t, []int{3, 1, 2, 0, 4}, sorted)
}

func TestForEach(t *testing.T) {
	s := bitset.Of(6, 5, 1, 3)
	var seen []int
	s.ForEach(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{1, 3, 5}, seen)
}

func TestString(t *testing.T) {
	s := bitset.Of(4, 1, 3)
	assert.Equal(t, "{1,3}", s.String())
}
