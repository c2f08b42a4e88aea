package pprint

import (
	"strings"
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintMatchesPuzzleString(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n__3")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, pz))
	assert.Equal(t, pz.String(), sb.String())
	assert.Equal(t, pz.String(), Sprint(pz))
}

func TestFprintSummaryReportsSizeAndHints(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n__3")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, FprintSummary(&sb, "diagonal", pz))
	out := sb.String()
	assert.Contains(t, out, "diagonal")
	assert.Contains(t, out, "3x3")
	assert.Contains(t, out, "sum_of_hint=6")
}

func TestFprintDiffReportsMismatch(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n___")
	require.NoError(t, err)
	// No edges are set, so the hinted cell's actual Line count (0) won't
	// match its hint (3).
	var sb strings.Builder
	require.NoError(t, FprintDiff(&sb, pz))
	assert.Contains(t, sb.String(), "hint 3, found 0 line edges")
}

func TestFprintDiffNoMismatch(t *testing.T) {
	pz, err := core.ParsePuzzle("0__\n___\n___")
	require.NoError(t, err)
	pz.SetEdgeH(0, 0, core.Cross)
	pz.SetEdgeH(0, 1, core.Cross)
	pz.SetEdgeV(0, 0, core.Cross)
	pz.SetEdgeV(1, 0, core.Cross)

	var sb strings.Builder
	require.NoError(t, FprintDiff(&sb, pz))
	assert.Contains(t, sb.String(), "no hint mismatches")
}
