package core_test

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAddSub(t *testing.T) {
	p := core.Point{X: 2, Y: 3}
	q := p.Add(core.Up)
	assert.Equal(t, core.Point{X: 2, Y: 2}, q)
	assert.Equal(t, core.Up, q.Sub(p))
}

func TestPointLess(t *testing.T) {
	assert.True(t, core.Point{X: 0, Y: 0}.Less(core.Point{X: 0, Y: 1}))
	assert.True(t, core.Point{X: 0, Y: 1}.Less(core.Point{X: 1, Y: 1}))
	assert.False(t, core.Point{X: 1, Y: 1}.Less(core.Point{X: 0, Y: 1}))
}

func TestRotationRoundTrips(t *testing.T) {
	// UCW90 applied four times returns to the start.
	m := core.Move{X: 3, Y: 1}
	for i := 0; i < 4; i++ {
		m = core.UCW90.Apply(m)
	}
	assert.Equal(t, core.Move{X: 3, Y: 1}, m)
}

func TestAllRotationsDistinctCount(t *testing.T) {
	require.Len(t, core.AllRotations, 8)
}

func TestSizeCounts(t *testing.T) {
	s := core.Size{Rows: 3, Cols: 4}
	assert.Equal(t, 12, s.CellCount())
	assert.Equal(t, 20, s.PointCount())
}

func TestCellIdRoundTrip(t *testing.T) {
	size := core.Size{Rows: 3, Cols: 4}
	for y := 0; y < size.Rows; y++ {
		for x := 0; x < size.Cols; x++ {
			p := core.Point{X: x, Y: y}
			id := core.CellIdOf(size, p)
			require.NotEqual(t, core.OutsideCellId, id)
			assert.Equal(t, p, core.PointOfCellId(size, id))
		}
	}
}

func TestCellIdOfOutOfRangeIsOutside(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	assert.Equal(t, core.OutsideCellId, core.CellIdOf(size, core.Point{X: -1, Y: 0}))
	assert.Equal(t, core.OutsideCellId, core.CellIdOf(size, core.Point{X: 2, Y: 0}))
	assert.Equal(t, core.OutsideCellId, core.CellIdOf(size, core.Point{X: 0, Y: 2}))
}

func TestPointsEnumeration(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	pts := core.Points(size)
	assert.Len(t, pts, size.PointCount())
	assert.Equal(t, core.PointsInRow(size, 0), pts[:3])
}
