package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUfUnionAndFind(t *testing.T) {
	uf := NewUf([]int{1, 2, 3, 4})
	assert.False(t, uf.Same(0, 1))

	combine := func(a, b int) int { return a + b }
	changed := uf.Union(0, 1, combine)
	require.True(t, changed)
	assert.True(t, uf.Same(0, 1))
	assert.Equal(t, 3, uf.Get(0))
	assert.Equal(t, 3, uf.Get(1))

	// Re-unioning an already-merged pair reports no change.
	assert.False(t, uf.Union(0, 1, combine))
}

func TestUfRoots(t *testing.T) {
	uf := NewUf([]struct{}{{}, {}, {}, {}})
	uf.Union(0, 1, noop)
	roots := uf.Roots()
	assert.Len(t, roots, 3)
}

func TestUfClone(t *testing.T) {
	uf := NewUf([]int{0, 0, 0})
	clone := uf.Clone()
	uf.Union(0, 1, func(a, b int) int { return a + b })
	assert.False(t, clone.Same(0, 1))
	assert.True(t, uf.Same(0, 1))
}
