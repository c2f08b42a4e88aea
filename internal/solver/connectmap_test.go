package solver

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectMapStartsWithOneAreaPerCell(t *testing.T) {
	pz, err := core.ParsePuzzle("__\n__")
	require.NoError(t, err)
	sm := FromPuzzle(pz)
	cm, err := NewConnectMap(pz, sm)
	require.NoError(t, err)
	// Nothing fixed yet: every cell and the exterior are still joined by
	// unknown edges, but no Cross edge has merged any areas, so each cell
	// (plus the exterior) starts in its own area.
	assert.Equal(t, pz.Size().CellCount()+1, cm.CountArea())
}

func TestConnectMapMergesOnCrossEdge(t *testing.T) {
	pz, err := core.ParsePuzzle("__\n__")
	require.NoError(t, err)
	size := pz.Size()
	sm := FromPuzzle(pz)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	b := core.CellIdOf(size, core.Point{X: 1, Y: 0})
	sm.SetSame(a, b)

	cm, err := NewConnectMap(pz, sm)
	require.NoError(t, err)
	areaA := cm.Get(a)
	areaB := cm.Get(b)
	assert.Equal(t, areaA.Coord, areaB.Coord)
}

func TestConnectMapSumOfHintPerArea(t *testing.T) {
	pz, err := core.ParsePuzzle("2_\n_2")
	require.NoError(t, err)
	size := pz.Size()
	sm := FromPuzzle(pz)
	cm, err := NewConnectMap(pz, sm)
	require.NoError(t, err)

	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	assert.Equal(t, 2, cm.Get(a).SumOfHint)
	assert.Equal(t, 4, cm.SumOfHint())
}
