package solver

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestEdgePatternNormalizes(t *testing.T) {
	p0 := core.Point{X: 1, Y: 1}
	p1 := core.Point{X: 0, Y: 0}
	ep := Cross(p0, p1)
	assert.Equal(t, p1, ep.P0)
	assert.Equal(t, p0, ep.P1)
}

func TestHintPatternMatches(t *testing.T) {
	pz, _ := core.ParsePuzzle("3__\n___\n___")
	hp := HintPattern{Hint: 3, Point: core.Point{X: 0, Y: 0}}
	assert.Equal(t, ResultComplete, hp.Matches(pz))

	wrong := HintPattern{Hint: 2, Point: core.Point{X: 0, Y: 0}}
	assert.Equal(t, ResultConflict, wrong.Matches(pz))

	outOfRange := HintPattern{Hint: 0, Point: core.Point{X: 5, Y: 5}}
	assert.Equal(t, ResultConflict, outOfRange.Matches(pz))
}

func TestRotatePointQuarterTurn(t *testing.T) {
	ep := LineEdge(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0})
	rotated := RotatePoint(ep, core.UCW90)
	// UCW90 sends (1,0) to (0,1); the pair is renormalized afterward.
	assert.Equal(t, core.Point{X: 0, Y: 0}, rotated.P0)
	assert.Equal(t, core.Point{X: 0, Y: 1}, rotated.P1)
}

func TestToCellIdMapsOutOfRangeToOutside(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	ep := LineEdge(core.Point{X: -1, Y: 0}, core.Point{X: 0, Y: 0})
	cep := ToCellId(size, ep)
	assert.True(t, cep.P0 == core.OutsideCellId || cep.P1 == core.OutsideCellId)
}

func TestMatchAndApplyCellEdge(t *testing.T) {
	size := core.Size{Rows: 2, Cols: 2}
	sm := NewSideMap(size)
	a := core.CellIdOf(size, core.Point{X: 0, Y: 0})
	b := core.CellIdOf(size, core.Point{X: 1, Y: 0})
	ep := LineEdge(a, b)

	assert.Equal(t, ResultPartial, MatchCellEdge(ep, sm))
	ApplyCellEdge(ep, sm)
	assert.Equal(t, ResultComplete, MatchCellEdge(ep, sm))

	wrong := Cross(a, b)
	assert.Equal(t, ResultConflict, MatchCellEdge(wrong, sm))
}
