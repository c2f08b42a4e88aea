package core_test

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePuzzleShapeB(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n__3")
	require.NoError(t, err)
	assert.Equal(t, 3, pz.Row())
	assert.Equal(t, 3, pz.Column())
	assert.Equal(t, core.Hint(3), pz.Hint(core.Point{X: 0, Y: 0}))
	assert.Equal(t, core.Hint(3), pz.Hint(core.Point{X: 2, Y: 2}))
	assert.Equal(t, core.NoHint, pz.Hint(core.Point{X: 1, Y: 1}))
	assert.Equal(t, 6, pz.SumOfHint())
}

func TestParsePuzzleShapeA(t *testing.T) {
	text := "" +
		"+ + +\n" +
		"     \n" +
		"+ + +\n" +
		" 3   \n" +
		"+ + +\n"
	pz, err := core.ParsePuzzle(text)
	require.NoError(t, err)
	assert.Equal(t, core.Hint(3), pz.Hint(core.Point{X: 0, Y: 1}))
	assert.Equal(t, 3, pz.SumOfHint())
}

func TestParsePuzzleRoundTripsToShapeA(t *testing.T) {
	pz, err := core.ParsePuzzle("2_\n_2")
	require.NoError(t, err)
	str := pz.String()
	reparsed, err := core.ParsePuzzle(str)
	require.NoError(t, err)
	assert.Equal(t, pz.SumOfHint(), reparsed.SumOfHint())
	assert.Equal(t, pz.Hint(core.Point{X: 0, Y: 0}), reparsed.Hint(core.Point{X: 0, Y: 0}))
	assert.Equal(t, pz.Hint(core.Point{X: 1, Y: 1}), reparsed.Hint(core.Point{X: 1, Y: 1}))
}

func TestParsePuzzleInvalidHint(t *testing.T) {
	_, err := core.ParsePuzzle("5__\n___\n___")
	assert.Error(t, err)
}

func TestParsePuzzleLengthMismatch(t *testing.T) {
	_, err := core.ParsePuzzle("3__\n__\n__3")
	assert.Error(t, err)
}

func TestParsePuzzleEmpty(t *testing.T) {
	_, err := core.ParsePuzzle("")
	assert.Error(t, err)
}

func TestPuzzleCloneIsIndependent(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n__3")
	require.NoError(t, err)
	clone := pz.Clone()
	clone.SetHint(core.Point{X: 1, Y: 1}, core.Hint(2))
	assert.Equal(t, core.NoHint, pz.Hint(core.Point{X: 1, Y: 1}))
	assert.Equal(t, core.Hint(2), clone.Hint(core.Point{X: 1, Y: 1}))
	assert.NotEqual(t, pz.SumOfHint(), clone.SumOfHint())
}

func TestPuzzleSetEdge(t *testing.T) {
	pz := core.NewPuzzle(core.Size{Rows: 2, Cols: 2})
	pz.SetEdgeH(0, 1, core.Line)
	e, ok := pz.EdgeH(0, 1)
	require.True(t, ok)
	assert.Equal(t, core.Line, e)

	_, ok = pz.EdgeH(0, 0)
	assert.False(t, ok)
}
