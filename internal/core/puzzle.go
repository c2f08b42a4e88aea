package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Side is which region of the loop a cell belongs to.
type Side int

const (
	Out Side = iota
	In
)

func (s Side) String() string {
	if s == In {
		return "in"
	}
	return "out"
}

// Edge is whether a lattice edge is part of the loop.
type Edge int

const (
	Line Edge = iota
	Cross
)

func (e Edge) String() string {
	if e == Line {
		return "line"
	}
	return "cross"
}

// Hint is a cell's clue: the number of Line edges that must surround it.
// NoHint marks a cell with no clue.
type Hint int

const NoHint Hint = -1

// CellId identifies a puzzle cell (or the single exterior region) the way
// the solver package's SideMap/ConnectMap track it: OutsideCellId is the
// sentinel for "outside the grid entirely", and interior cells are numbered
// row-major starting at 1.
type CellId int

const OutsideCellId CellId = 0

// Less orders cell ids numerically, used to normalize an EdgePattern's two
// endpoints into a canonical order.
func (c CellId) Less(d CellId) bool { return c < d }

// CellIdOf returns the CellId for a cell coordinate 0<=x<size.Cols,
// 0<=y<size.Rows.
func CellIdOf(size Size, p Point) CellId {
	if p.X < 0 || p.Y < 0 || p.X >= size.Cols || p.Y >= size.Rows {
		return OutsideCellId
	}
	return CellId(p.Y*size.Cols + p.X + 1)
}

// PointOfCellId is the inverse of CellIdOf; it returns (-1, -1) for
// OutsideCellId.
func PointOfCellId(size Size, id CellId) Point {
	if id == OutsideCellId {
		return Point{-1, -1}
	}
	idx := int(id) - 1
	return Point{X: idx % size.Cols, Y: idx / size.Cols}
}

// edgeGrid is a dense rectangular store of edge markers, addressed by plain
// (row, col) integers rather than the Point/Geom machinery — edge_v and
// edge_h each have their own, different shape and don't need to pretend to
// be a lattice-point grid.
type edgeGrid struct {
	rows, cols int
	known      []bool
	edge       []Edge
}

func newEdgeGrid(rows, cols int, fill Edge, known bool) edgeGrid {
	g := edgeGrid{rows: rows, cols: cols}
	g.known = make([]bool, rows*cols)
	g.edge = make([]Edge, rows*cols)
	for i := range g.edge {
		g.known[i] = known
		g.edge[i] = fill
	}
	return g
}

func (g edgeGrid) idx(r, c int) int { return r*g.cols + c }

func (g edgeGrid) get(r, c int) (Edge, bool) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return Cross, false
	}
	i := g.idx(r, c)
	return g.edge[i], g.known[i]
}

func (g *edgeGrid) set(r, c int, e Edge) {
	i := g.idx(r, c)
	g.edge[i] = e
	g.known[i] = true
}

func (g edgeGrid) clone() edgeGrid {
	return edgeGrid{
		rows:  g.rows,
		cols:  g.cols,
		known: append([]bool(nil), g.known...),
		edge:  append([]Edge(nil), g.edge...),
	}
}

// Puzzle is the static problem: a rectangular grid of hinted cells bounded
// by a lattice of edges, some of which may already be fixed to Line/Cross
// by the input (a Shape A drawing can mark edges with '-', '|' or 'x';
// Shape B never sets any).
type Puzzle struct {
	geomSize
	hint      []Hint // row-major, size.CellCount()
	edgeV     edgeGrid
	edgeH     edgeGrid
	sumOfHint int
}

// NewPuzzle builds an empty puzzle of the given size with no hints set.
func NewPuzzle(size Size) *Puzzle {
	hint := make([]Hint, size.CellCount())
	for i := range hint {
		hint[i] = NoHint
	}
	return &Puzzle{
		geomSize: geomSize{size: size},
		hint:     hint,
		edgeV:    newEdgeGrid(size.Rows, size.Cols+1, Cross, false),
		edgeH:    newEdgeGrid(size.Rows+1, size.Cols, Cross, false),
	}
}

// Hint returns the clue at cell p, or NoHint.
func (pz *Puzzle) Hint(p Point) Hint {
	return pz.hint[p.Y*pz.size.Cols+p.X]
}

// SetHint sets the clue at cell p, maintaining SumOfHint incrementally.
func (pz *Puzzle) SetHint(p Point, h Hint) {
	i := p.Y*pz.size.Cols + p.X
	if old := pz.hint[i]; old != NoHint {
		pz.sumOfHint -= int(old)
	}
	pz.hint[i] = h
	if h != NoHint {
		pz.sumOfHint += int(h)
	}
}

// SumOfHint is the sum of every set hint in the puzzle.
func (pz *Puzzle) SumOfHint() int { return pz.sumOfHint }

// EdgeV returns the vertical edge between lattice points (x, y) and
// (x, y+1), if fixed.
func (pz *Puzzle) EdgeV(x, y int) (Edge, bool) { return pz.edgeV.get(y, x) }

// SetEdgeV fixes the vertical edge at (x, y).
func (pz *Puzzle) SetEdgeV(x, y int, e Edge) { pz.edgeV.set(y, x, e) }

// EdgeH returns the horizontal edge between lattice points (x, y) and
// (x+1, y), if fixed.
func (pz *Puzzle) EdgeH(x, y int) (Edge, bool) { return pz.edgeH.get(y, x) }

// SetEdgeH fixes the horizontal edge at (x, y).
func (pz *Puzzle) SetEdgeH(x, y int, e Edge) { pz.edgeH.set(y, x, e) }

// Clone returns an independent deep copy.
func (pz *Puzzle) Clone() *Puzzle {
	return &Puzzle{
		geomSize:  pz.geomSize,
		hint:      append([]Hint(nil), pz.hint...),
		edgeV:     pz.edgeV.clone(),
		edgeH:     pz.edgeH.clone(),
		sumOfHint: pz.sumOfHint,
	}
}

// ParsePuzzleError is the taxonomy of ways puzzle text can fail to parse,
// mirroring srither-core's ParsePuzzleError.
type ParsePuzzleError struct {
	Kind string // Empty, TooSmallRows, TooSmallColumns, LengthMismatch, InvalidHint, Lattice
	Msg  string
	Err  error
}

func (e *ParsePuzzleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse puzzle: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parse puzzle: %s: %s", e.Kind, e.Msg)
}

func (e *ParsePuzzleError) Unwrap() error { return e.Err }

func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// ParsePuzzle parses either textual shape (Shape A, the lattice drawing, or
// Shape B, one character per cell) into a Puzzle.
func ParsePuzzle(text string) (*Puzzle, error) {
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := trimBlankLines(rawLines)
	if len(lines) == 0 {
		return nil, &ParsePuzzleError{Kind: "Empty", Msg: "puzzle text is empty"}
	}

	if strings.ContainsRune(lines[0], '+') {
		return parseShapeA(lines)
	}
	return parseShapeB(lines)
}

func parseShapeA(lines []string) (*Puzzle, error) {
	lp, err := NewLatticeParser(lines)
	if err != nil {
		return nil, &ParsePuzzleError{Kind: "Lattice", Err: err}
	}
	rows, cols := lp.NumRows(), lp.NumCols()
	if rows < 1 {
		return nil, &ParsePuzzleError{Kind: "TooSmallRows", Msg: "puzzle must have at least one row"}
	}
	if cols < 1 {
		return nil, &ParsePuzzleError{Kind: "TooSmallColumns", Msg: "puzzle must have at least one column"}
	}

	pz := NewPuzzle(Size{Rows: rows, Cols: cols})

	for y := 0; y <= rows; y++ {
		for x := 0; x < cols; x++ {
			switch lp.HEdge(y, x) {
			case 'x':
				pz.SetEdgeH(x, y, Cross)
			case '-':
				pz.SetEdgeH(x, y, Line)
			}
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x <= cols; x++ {
			switch lp.VEdge(y, x) {
			case 'x':
				pz.SetEdgeV(x, y, Cross)
			case '|':
				pz.SetEdgeV(x, y, Line)
			}
		}
	}

	hintCount := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			text := strings.TrimSpace(lp.CellText(y, x))
			switch text {
			case "", "_", "-":
				// no hint
			default:
				n, err := strconv.Atoi(text)
				if err != nil || n < 0 || n > 4 {
					return nil, &ParsePuzzleError{Kind: "InvalidHint", Msg: fmt.Sprintf("invalid hint %q at cell (%d, %d)", text, x, y)}
				}
				pz.SetHint(Point{x, y}, Hint(n))
				hintCount++
			}
		}
	}
	return pz, nil
}

func parseShapeB(lines []string) (*Puzzle, error) {
	rowLen := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != rowLen {
			return nil, &ParsePuzzleError{Kind: "LengthMismatch", Msg: "all rows must have equal length"}
		}
	}
	rows, cols := len(lines), rowLen
	if rows < 1 {
		return nil, &ParsePuzzleError{Kind: "TooSmallRows", Msg: "puzzle must have at least one row"}
	}
	if cols < 1 {
		return nil, &ParsePuzzleError{Kind: "TooSmallColumns", Msg: "puzzle must have at least one column"}
	}

	pz := NewPuzzle(Size{Rows: rows, Cols: cols})
	for y, l := range lines {
		for x, r := range []rune(l) {
			switch r {
			case '_', '-':
				// no hint
			case '0', '1', '2', '3', '4':
				pz.SetHint(Point{x, y}, Hint(r-'0'))
			default:
				return nil, &ParsePuzzleError{Kind: "InvalidHint", Msg: fmt.Sprintf("invalid hint character %q at cell (%d, %d)", r, x, y)}
			}
		}
	}
	return pz, nil
}

// String renders the puzzle in Shape A, the lattice drawing, regardless of
// which shape it was parsed from.
func (pz *Puzzle) String() string {
	var sb strings.Builder
	rows, cols := pz.Row(), pz.Column()
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			sb.WriteByte('+')
			if x < cols {
				e, known := pz.EdgeH(x, y)
				sb.WriteByte(hEdgeRune(e, known))
			}
		}
		sb.WriteByte('\n')
		if y == rows {
			break
		}
		for x := 0; x <= cols; x++ {
			e, known := pz.EdgeV(x, y)
			sb.WriteByte(vEdgeRune(e, known))
			if x < cols {
				h := pz.Hint(Point{x, y})
				if h == NoHint {
					sb.WriteByte(' ')
				} else {
					sb.WriteString(strconv.Itoa(int(h)))
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func hEdgeRune(e Edge, known bool) byte {
	if !known {
		return ' '
	}
	if e == Cross {
		return 'x'
	}
	return '-'
}

func vEdgeRune(e Edge, known bool) byte {
	if !known {
		return ' '
	}
	if e == Cross {
		return 'x'
	}
	return '|'
}
