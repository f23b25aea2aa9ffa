package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dfs"
)

// chain builds planets named after letters and lanes given as index pairs.
func chain(t *testing.T, n int, lanes [][2]int) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.VertexID, n)
	for i := range ids {
		id, err := g.AddVertex(string(rune('A' + i)))
		require.NoError(t, err)
		ids[i] = id
	}
	for _, l := range lanes {
		require.NoError(t, g.AddEdge(ids[l[0]], ids[l[1]], core.EdgeData{Distance: 10}))
	}

	return g, ids
}

func TestWalk_PostOrderAndDepth(t *testing.T) {
	// A → B → C, A → D
	g, id := chain(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 3}})

	var pre []core.VertexID
	res, err := dfs.Walk(g, id[0], dfs.WithOnVisit(func(v core.VertexID, _ int) error {
		pre = append(pre, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{id[0], id[1], id[2], id[3]}, pre)
	assert.Equal(t, []core.VertexID{id[2], id[1], id[3], id[0]}, res.Order)
	assert.Equal(t, 2, res.Depth[id[2]])
	assert.Equal(t, id[1], res.Parent[id[2]])
	_, hasParent := res.Parent[id[0]]
	assert.False(t, hasParent)
}

func TestWalk_MaxDepth(t *testing.T) {
	g, id := chain(t, 3, [][2]int{{0, 1}, {1, 2}})

	res, err := dfs.Walk(g, id[0], dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.True(t, res.Visited(id[1]))
	assert.False(t, res.Visited(id[2]))
	assert.NotContains(t, res.Parent, id[2])

	res, err = dfs.Walk(g, id[0], dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{id[0]}, res.Order)
}

func TestWalk_FilterAndFullTraversal(t *testing.T) {
	g, id := chain(t, 4, [][2]int{{0, 1}, {2, 3}})

	res, err := dfs.Walk(g, id[0], dfs.WithFilterEdge(func(core.Edge) bool { return false }))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SkippedLanes)
	assert.Equal(t, []core.VertexID{id[0]}, res.Order)

	res, err = dfs.Walk(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, 0, res.Depth[id[2]])
}

func TestWalk_Errors(t *testing.T) {
	_, err := dfs.Walk(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g, id := chain(t, 2, [][2]int{{0, 1}})
	_, err = dfs.Walk(g, 99)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	boom := errors.New("boom")
	res, err := dfs.Walk(g, id[0], dfs.WithOnExit(func(v core.VertexID) error {
		if v == id[1] {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Walk(g, id[0], dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCycles(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)

	g, _ := chain(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 3}})
	has, cycles, err = dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)

	// B → C → D → B, a self-lane on A and a parallel duplicate lane D → B.
	g, _ = chain(t, 4, [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 3}, {3, 1}, {3, 1}})
	has, cycles, err = dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]core.VertexID{{0, 0}, {1, 2, 3, 1}}, cycles)
}

func TestDetectCycles_CanonicalRotation(t *testing.T) {
	// A → C enters the loop C → D → B → C at C; it is reported from B.
	g, _ := chain(t, 4, [][2]int{{0, 2}, {2, 3}, {3, 1}, {1, 2}})

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]core.VertexID{{1, 2, 3, 1}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{2, 3, 1}))
	assert.Equal(t, []int{1, 1, 2}, dfs.MinimalRotation([]int{1, 2, 1}))
	assert.Equal(t, []string{"a"}, dfs.MinimalRotation([]string{"a"}))
	assert.Empty(t, dfs.MinimalRotation([]int{}))
}

func TestCompareAndIndexOf(t *testing.T) {
	assert.Equal(t, -1, dfs.Compare([]int{1, 2}, []int{1, 3}))
	assert.Equal(t, 1, dfs.Compare([]int{2}, []int{1, 9}))
	assert.Equal(t, -1, dfs.Compare([]int{1}, []int{1, 0}))
	assert.Equal(t, 0, dfs.Compare([]int{4, 5}, []int{4, 5}))
	assert.Equal(t, 1, dfs.IndexOf([]string{"x", "y"}, "y"))
	assert.Equal(t, -1, dfs.IndexOf([]string{"x"}, "z"))
}
