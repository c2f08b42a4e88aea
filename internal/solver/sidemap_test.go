package solver

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideMapFixSideAgainstOutside(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})

	assert.Equal(t, SideUnknown, sm.GetSide(a))
	changed := sm.SetInside(a)
	require.True(t, changed)
	assert.Equal(t, SideFixedIn, sm.GetSide(a))
	assert.False(t, sm.HasConflict())
}

func TestSideMapSameDifferentEdges(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	b := core.CellIdOf(size, core.Point{X: 1, Y: 0})

	assert.Equal(t, EdgeUnknown, sm.GetEdge(a, b))
	sm.SetSame(a, b)
	assert.Equal(t, EdgeFixedCross, sm.GetEdge(a, b))

	sm2 := NewSideMap(size)
	sm2.SetDifferent(a, b)
	assert.Equal(t, EdgeFixedLine, sm2.GetEdge(a, b))
}

func TestSideMapConflict(t *testing.T) {
	size := core.Size{Rows: 1, Cols: 1}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	sm.SetInside(a)
	sm.SetOutside(a)
	assert.True(t, sm.HasConflict())
}

func TestSideMapRevisionAdvancesOnNewInformationOnly(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	b := core.CellIdOf(size, core.Point{X: 1, Y: 0})

	before := sm.Revision()
	sm.SetSame(a, b)
	assert.Equal(t, before+1, sm.Revision())

	again := sm.Revision()
	sm.SetSame(a, b)
	assert.Equal(t, again, sm.Revision())
}

func TestSideMapCloneIsIndependent(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})

	clone := sm.Clone()
	sm.SetInside(a)
	assert.Equal(t, SideFixedIn, sm.GetSide(a))
	assert.Equal(t, SideUnknown, clone.GetSide(a))
}

func TestFromPuzzleSeedsFixedEdges(t *testing.T) {
	pz := core.NewPuzzle(core.Size{Rows: 2, Cols: 2})
	pz.SetEdgeV(1, 0, core.Line)
	sm := FromPuzzle(pz)

	left := core.CellIdOf(pz.Size(), core.Point{X: 0, Y: 0})
	right := core.CellIdOf(pz.Size(), core.Point{X: 1, Y: 0})
	assert.Equal(t, EdgeFixedLine, sm.GetEdge(left, right))
}
