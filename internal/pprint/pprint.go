// Package pprint renders a solved puzzle for a terminal: plain ASCII,
// no color escapes, matching the CLI's original plain pretty-printer.
package pprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/gifnksm/slither-link-solver/internal/core"
)

// Fprint writes pz's lattice drawing (Shape A) to w, identical to
// pz.String() but available as a free function so cmd/* can treat it as a
// formatting step distinct from core.Puzzle's own Stringer.
//
// Grounded on cli/src/pprint.rs.
func Fprint(w io.Writer, pz *core.Puzzle) error {
	_, err := io.WriteString(w, pz.String())
	return err
}

// Sprint renders pz's lattice drawing to a string.
func Sprint(pz *core.Puzzle) string {
	return pz.String()
}

// FprintSummary writes a one-line summary of pz: its size and hint total,
// used by cmd/test's verbose mode as a header for each puzzle.
func FprintSummary(w io.Writer, name string, pz *core.Puzzle) error {
	_, err := fmt.Fprintf(w, "%s: %dx%d, sum_of_hint=%d\n", name, pz.Row(), pz.Column(), pz.SumOfHint())
	return err
}

// FprintDiff writes, for every hinted cell whose surrounding Line count
// does not equal its hint, a line describing the mismatch, or a single "no
// hint mismatches" line. Used by cmd/test's verbose mode to check each
// solved grid against its hints.
func FprintDiff(w io.Writer, pz *core.Puzzle) error {
	size := pz.Size()
	var sb strings.Builder
	found := false
	for y := 0; y < size.Rows; y++ {
		for x := 0; x < size.Cols; x++ {
			p := core.Point{X: x, Y: y}
			hint := pz.Hint(p)
			if hint == core.NoHint {
				continue
			}
			count := lineCountAround(pz, p)
			if count != int(hint) {
				found = true
				fmt.Fprintf(&sb, "cell (%d, %d): hint %d, found %d line edges\n", x, y, hint, count)
			}
		}
	}
	if !found {
		sb.WriteString("no hint mismatches\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func lineCountAround(pz *core.Puzzle, p core.Point) int {
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
