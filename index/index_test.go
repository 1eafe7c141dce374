// SPDX-License-Identifier: MIT

package index_test

import (
	"testing"

	"github.com/katalvlaran/lvframe/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	ix := index.Build([]string{"b", "a", "c"})
	require.Equal(t, 3, ix.Len())
	assert.Equal(t, []int{0, 1, 2}, ix.Positions())
	assert.Equal(t, []string{"b", "a", "c"}, ix.Labels())

	assert.Equal(t, 0, index.Build[string](nil).Len())
}

func TestProject_KeepsEntryOrder(t *testing.T) {
	t.Parallel()

	ix := index.Build([]string{"d", "a", "c", "b"})
	got := ix.Project([]string{"b", "d", "zz"})
	assert.Equal(t, index.Index[string]{{Pos: 0, Label: "d"}, {Pos: 3, Label: "b"}}, got)

	assert.Equal(t, 0, ix.Project(nil).Len())
}

func TestSortByLabel_Stable(t *testing.T) {
	t.Parallel()

	ix := index.Build([]string{"c", "a", "b", "a"})
	got := ix.SortByLabel()
	assert.Equal(t, []string{"a", "a", "b", "c"}, got.Labels())
	assert.Equal(t, []int{1, 3, 2, 0}, got.Positions())
	// Receiver untouched.
	assert.Equal(t, []int{0, 1, 2, 3}, ix.Positions())
}

func TestComplement_PositionOrder(t *testing.T) {
	t.Parallel()

	ix := index.Build([]string{"r4", "r1", "r3", "r2", "r0"})
	sub := ix.Project([]string{"r1", "r2"}).SortByLabel()
	got := ix.Complement(sub)
	assert.Equal(t, []int{0, 2, 4}, got.Positions())
	assert.Equal(t, []string{"r4", "r3", "r0"}, got.Labels())

	assert.Equal(t, ix.Positions(), ix.Complement(nil).Positions())
	assert.Equal(t, 0, ix.Complement(ix).Len())
}

func TestComplement_UnsortedReceiver(t *testing.T) {
	t.Parallel()

	ix := index.Build([]int{30, 10, 20}).SortByLabel()
	got := ix.Complement(index.Index[int]{{Pos: 1, Label: 10}})
	assert.Equal(t, []int{0, 2}, got.Positions())
	assert.Equal(t, []int{30, 20}, got.Labels())
}

func TestSetHelpers(t *testing.T) {
	t.Parallel()

	a := []string{"c", "a", "b", "a"}
	b := []string{"b", "d", "c", "c"}
	assert.Equal(t, []string{"b", "c"}, index.Intersect(a, b))
	assert.Equal(t, []string{"a"}, index.Difference(a, b))
	assert.Equal(t, []string{"d"}, index.Difference(b, a))
	assert.Empty(t, index.Difference(a, a))

	assert.Equal(t, []string{"a"}, index.Duplicates(a))
	assert.Equal(t, []string{"c"}, index.Duplicates(b))
	assert.Empty(t, index.Duplicates([]string{"x", "y"}))
}

func TestFirstPositions(t *testing.T) {
	t.Parallel()

	got := index.FirstPositions([]int{7, 3, 7, 1})
	assert.Equal(t, map[int]int{7: 0, 3: 1, 1: 3}, got)
}
