package solver

import (
	"testing"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineCount(pz *core.Puzzle, p core.Point) int {
	n := 0
	if e, ok := pz.EdgeH(p.X, p.Y); ok && e == core.Line {
		n++
	}
	if e, ok := pz.EdgeH(p.X, p.Y+1); ok && e == core.Line {
		n++
	}
	if e, ok := pz.EdgeV(p.X, p.Y); ok && e == core.Line {
		n++
	}
	if e, ok := pz.EdgeV(p.X+1, p.Y); ok && e == core.Line {
		n++
	}
	return n
}

func assertSatisfiesHints(t *testing.T, pz *core.Puzzle) {
	t.Helper()
	for y := 0; y < pz.Row(); y++ {
		for x := 0; x < pz.Column(); x++ {
			p := core.Point{X: x, Y: y}
			if h := pz.Hint(p); h != core.NoHint {
				assert.Equal(t, int(h), lineCount(pz, p), "hint mismatch at %v", p)
			}
		}
	}
}

// S1 - 3x3 trivial zeros: every edge Cross, every side Out.
func TestSolveTrivialZeros(t *testing.T) {
	pz, err := core.ParsePuzzle("000\n000\n000")
	require.NoError(t, err)

	solved, err := Solve(pz)
	require.NoError(t, err)
	assertSatisfiesHints(t, solved)

	for y := 0; y <= solved.Row(); y++ {
		for x := 0; x < solved.Column(); x++ {
			e, ok := solved.EdgeH(x, y)
			require.True(t, ok)
			assert.Equal(t, core.Cross, e)
		}
	}
}

// S2 - 1x4 row "1243" is unsolvable.
func TestSolveUnsolvableRow(t *testing.T) {
	pz, err := core.ParsePuzzle("1243")
	require.NoError(t, err)

	_, err = Solve(pz)
	require.Error(t, err)
	assert.True(t, isInvalidBoard(err))
}

// S3 - 3x3 single hint: exactly three of the four edges around the center
// are Line.
func TestSolveSingleCenterHint(t *testing.T) {
	pz, err := core.ParsePuzzle("___\n_3_\n___")
	require.NoError(t, err)

	solved, err := Solve(pz)
	require.NoError(t, err)
	assertSatisfiesHints(t, solved)
	assert.Equal(t, 3, lineCount(solved, core.Point{X: 1, Y: 1}))
}

// S4 - 5x5 adjacent 3s: the "3 3" rule should close the puzzle.
func TestSolveAdjacentThrees(t *testing.T) {
	pz, err := core.ParsePuzzle("_____\n_____\n_33__\n_____\n_____")
	require.NoError(t, err)

	solved, err := Solve(pz)
	require.NoError(t, err)
	assertSatisfiesHints(t, solved)
}

// S5 - 3x3 diagonal 3s.
func TestSolveDiagonalThrees(t *testing.T) {
	pz, err := core.ParsePuzzle("3__\n___\n__3")
	require.NoError(t, err)

	solved, err := Solve(pz)
	require.NoError(t, err)
	assertSatisfiesHints(t, solved)
}

// S6 - enumeration on a 2x2 yields exactly two solutions, no duplicates.
func TestSolveEnumeratesAllSolutions(t *testing.T) {
	pz, err := core.ParsePuzzle("2_\n_2")
	require.NoError(t, err)

	theorems, err := BuiltinTheorems()
	require.NoError(t, err)

	it, err := NewSolutions(pz, theorems)
	require.NoError(t, err)

	seen := map[string]bool{}
	count := 0
	for it.Next() {
		s := it.Puzzle().String()
		assert.False(t, seen[s], "duplicate solution returned")
		seen[s] = true
		assertSatisfiesHints(t, it.Puzzle())
		count++
		require.Less(t, count, 100, "enumeration did not terminate")
	}
	assert.Equal(t, 2, count)
}

func TestSolveWithTheoremsUsesSuppliedCorpus(t *testing.T) {
	pz, err := core.ParsePuzzle("000\n000\n000")
	require.NoError(t, err)
	zeroRule := `
+ + ! +x+
 0  ! x0x
+ + ! +x+
`
	th, err := ParseTheorem(zeroRule)
	require.NoError(t, err)

	solved, err := SolveWithTheorems(pz, []*Theorem{th})
	require.NoError(t, err)
	assertSatisfiesHints(t, solved)
}
