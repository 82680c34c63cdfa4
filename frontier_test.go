package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontierOrdersByFCost(t *testing.T) {
	f := newFrontier[string]()
	f.Insert("c", 3)
	f.Insert("a", 1)
	f.Insert("b", 2)

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, "a", f.PopMin())
	assert.Equal(t, "b", f.PopMin())
	assert.Equal(t, "c", f.PopMin())
	assert.Equal(t, 0, f.Len())
}

func TestFrontierRequeueUpdatesPriority(t *testing.T) {
	f := newFrontier[string]()
	f.Insert("a", 5)
	f.Insert("b", 2)
	assert.True(t, f.Contains("a"))

	// Decrease-key: a jumps ahead of b without duplicating its entry.
	f.Insert("a", 1)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, "a", f.PopMin())
	assert.False(t, f.Contains("a"))
	assert.Equal(t, "b", f.PopMin())
}

func TestFrontierMembership(t *testing.T) {
	f := newFrontier[int]()
	assert.False(t, f.Contains(1))
	f.Insert(1, 1)
	assert.True(t, f.Contains(1))
	f.PopMin()
	assert.False(t, f.Contains(1))
}
