package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/Systemcluster/Adaptable-A-Star"
	"github.com/Systemcluster/Adaptable-A-Star/grid"
)

func TestSearchManyOverSharedGraph(t *testing.T) {
	g := grid.DemoWorld()
	queries := []astar.Query[*grid.Cell]{
		{Start: g.At(0, 0), Goal: g.At(4, 9)},
		{Start: g.At(0, 0), Goal: g.At(0, 0)},
		{Start: g.At(4, 9), Goal: g.At(0, 0)},
		{Start: g.At(0, 0), Goal: g.At(4, 1)}, // walled-off pocket
		{Start: g.At(0, 4), Goal: g.At(4, 6)},
	}

	results, err := astar.SearchMany(context.Background(), g.Nodes(), queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	assert.True(t, results[0].Found)
	assert.InDelta(t, 15.0, results[0].TotalCost, 1e-9)
	assert.Equal(t, 15, results[0].Steps)

	assert.True(t, results[1].Found)
	assert.Equal(t, 0.0, results[1].TotalCost)

	// Reverse query over the same undirected world costs the same.
	assert.True(t, results[2].Found)
	assert.InDelta(t, 15.0, results[2].TotalCost, 1e-9)

	assert.False(t, results[3].Found)
	assert.Nil(t, results[3].Path)

	assert.True(t, results[4].Found)
}

func TestSearchManyIsDeterministic(t *testing.T) {
	g := grid.DemoWorld()
	queries := []astar.Query[*grid.Cell]{
		{Start: g.At(0, 0), Goal: g.At(4, 9)},
		{Start: g.At(0, 4), Goal: g.At(4, 6)},
	}

	first, err := astar.SearchMany(context.Background(), g.Nodes(), queries, astar.WithParallelism(2))
	require.NoError(t, err)
	second, err := astar.SearchMany(context.Background(), g.Nodes(), queries, astar.WithParallelism(1))
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Found, second[i].Found)
		assert.Equal(t, first[i].TotalCost, second[i].TotalCost)
		assert.Equal(t, first[i].Steps, second[i].Steps)
	}
}

func TestSearchManyPropagatesPrecondition(t *testing.T) {
	g := grid.DemoWorld()
	other, _ := grid.New(1, 1)
	queries := []astar.Query[*grid.Cell]{
		{Start: g.At(0, 0), Goal: g.At(4, 9)},
		{Start: other.At(0, 0), Goal: g.At(4, 9)},
	}

	_, err := astar.SearchMany(context.Background(), g.Nodes(), queries)
	assert.ErrorIs(t, err, astar.ErrNotInGraph)
}
