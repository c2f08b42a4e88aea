package core

import "strings"

// ParseLatticeError reports a malformed ASCII lattice drawing: the '+'
// marks that denote grid points did not line up into a rectangular grid.
type ParseLatticeError struct {
	Msg string
}

func (e *ParseLatticeError) Error() string { return "invalid lattice: " + e.Msg }

// LatticeParser reads the ASCII-art lattice drawings used by both puzzle
// Shape A and the theorem corpus: a grid of '+' marking lattice points,
// with edge and cell content in the gaps between them.
//
//	+ + + +
//	   a
//	+ + + +
//	 a 1
//	+ + + +
//
// Grounded on srither-core's lattice_parser.rs: locate the rows and columns
// that carry '+' characters, verify every such row has '+' at every such
// column, and expose the gaps between them as edges/cell text.
type LatticeParser struct {
	lines     []string
	pointRows []int
	pointCols []int
}

// NewLatticeParser scans lines for a rectangular lattice of '+' marks.
func NewLatticeParser(lines []string) (*LatticeParser, error) {
	headerIdx := -1
	for i, l := range lines {
		if strings.ContainsRune(l, '+') {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, &ParseLatticeError{"no lattice points found"}
	}

	header := []rune(lines[headerIdx])
	var cols []int
	for i, r := range header {
		if r == '+' {
			cols = append(cols, i)
		}
	}

	var rows []int
	for i, l := range lines {
		rs := []rune(l)
		if cols[0] >= len(rs) || rs[cols[0]] != '+' {
			continue
		}
		for _, c := range cols {
			if c >= len(rs) || rs[c] != '+' {
				return nil, &ParseLatticeError{"misaligned lattice point"}
			}
		}
		rows = append(rows, i)
	}

	return &LatticeParser{lines: lines, pointRows: rows, pointCols: cols}, nil
}

// NumRows reports the number of cell-rows (one less than the number of
// point-rows).
func (lp *LatticeParser) NumRows() int { return len(lp.pointRows) - 1 }

// NumCols reports the number of cell-columns.
func (lp *LatticeParser) NumCols() int { return len(lp.pointCols) - 1 }

func (lp *LatticeParser) runeAt(row, col int) rune {
	if row < 0 || row >= len(lp.lines) {
		return ' '
	}
	rs := []rune(lp.lines[row])
	if col < 0 || col >= len(rs) {
		return ' '
	}
	return rs[col]
}

// HEdge returns the single non-blank rune found between point (col, row)
// and point (col+1, row), the horizontal edge marker for that gap.
func (lp *LatticeParser) HEdge(row, col int) rune {
	line := lp.pointRows[row]
	c0, c1 := lp.pointCols[col], lp.pointCols[col+1]
	for c := c0 + 1; c < c1; c++ {
		if r := lp.runeAt(line, c); r != ' ' {
			return r
		}
	}
	return ' '
}

// VEdge returns the single non-blank rune found between point (col, row)
// and point (col, row+1), the vertical edge marker for that gap.
func (lp *LatticeParser) VEdge(row, col int) rune {
	lineStart, lineEnd := lp.pointRows[row], lp.pointRows[row+1]
	c := lp.pointCols[col]
	for l := lineStart + 1; l < lineEnd; l++ {
		if r := lp.runeAt(l, c); r != ' ' {
			return r
		}
	}
	return ' '
}

// CellText returns the raw interior text of cell (col, row): everything in
// the gap between point-columns col and col+1, across the interior lines
// between point-rows row and row+1. Puzzle hints are a single digit; the
// theorem grammar packs a digit and/or same/different-side letters here.
func (lp *LatticeParser) CellText(row, col int) string {
	lineStart, lineEnd := lp.pointRows[row], lp.pointRows[row+1]
	c0, c1 := lp.pointCols[col], lp.pointCols[col+1]
	var sb strings.Builder
	for l := lineStart + 1; l < lineEnd; l++ {
		for c := c0 + 1; c < c1; c++ {
			sb.WriteRune(lp.runeAt(l, c))
		}
	}
	return sb.String()
}
