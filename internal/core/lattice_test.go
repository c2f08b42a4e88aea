package core_test

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeParserBasic(t *testing.T) {
	lines := []string{
		"+ + +",
		" a  ",
		"+-+ +",
		" 3|  ",
		"+ + +",
	}
	lp, err := core.NewLatticeParser(lines)
	require.NoError(t, err)
	assert.Equal(t, 2, lp.NumRows())
	assert.Equal(t, 2, lp.NumCols())
	assert.Equal(t, byte('-'), byte(lp.HEdge(1, 0)))
	assert.Equal(t, byte('|'), byte(lp.VEdge(1, 1)))
	assert.Contains(t, lp.CellText(1, 0), "3")
	assert.Contains(t, lp.CellText(0, 0), "a")
}

func TestLatticeParserMisaligned(t *testing.T) {
	lines := []string{
		"+ + +",
		"     ",
		"+ +",
	}
	_, err := core.NewLatticeParser(lines)
	assert.Error(t, err)
}

func TestLatticeParserNoLattice(t *testing.T) {
	_, err := core.NewLatticeParser([]string{"hello", "world"})
	assert.Error(t, err)
}
