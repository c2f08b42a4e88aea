// Package core holds the geometry and puzzle value types that the solver
// operates on: points, moves, rotations, the dense Puzzle grid, and the
// textual parser/formatter for both puzzle shapes.
package core

import "fmt"

// Point is a lattice coordinate, (column, row), matching the Rust original's
// (x, y) convention: X grows rightward, Y grows downward. The same type
// addresses both lattice vertices (edges, hints-by-position in the theorem
// grammar) and, contextually in the solver package, grid cells.
type Point struct {
	X, Y int
}

// Move is a displacement between two points. It shares Point's underlying
// shape but is kept as a distinct type so direction constants read clearly
// at call sites (p.Add(core.Up) rather than p.Add(core.Point{0, -1})).
type Move struct {
	X, Y int
}

// The four unit directions, matching geom.rs's UP/RIGHT/DOWN/LEFT.
var (
	Up    = Move{0, -1}
	Right = Move{1, 0}
	Down  = Move{0, 1}
	Left  = Move{-1, 0}
)

// AllDirections lists the four unit moves in UP, RIGHT, DOWN, LEFT order.
var AllDirections = [4]Move{Up, Right, Down, Left}

// Add returns the point displaced by m.
func (p Point) Add(m Move) Point {
	return Point{p.X + m.X, p.Y + m.Y}
}

// Sub returns the move from q to p.
func (p Point) Sub(q Point) Move {
	return Move{p.X - q.X, p.Y - q.Y}
}

// Neg returns the opposite displacement.
func (m Move) Neg() Move {
	return Move{-m.X, -m.Y}
}

// Mul applies a rotation matrix to a move, m' = m * r.
func (m Move) Mul(r Rotation) Move {
	return Move{
		X: m.X*r.A + m.Y*r.C,
		Y: m.X*r.B + m.Y*r.D,
	}
}

// Less orders points row-major (by Y, then X), used to normalize an
// EdgePattern's two endpoints into a canonical order.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
func (m Move) String() string  { return fmt.Sprintf("(%d, %d)", m.X, m.Y) }

// Rotation is a 2x2 integer matrix, [[A B] [C D]]. Applying a rotation to a
// Move computes m' = m * R. The eight dihedral transforms a theorem pattern
// can undergo are exactly the values below.
type Rotation struct {
	A, B, C, D int
}

var (
	UCW0   = Rotation{1, 0, 0, 1}
	UCW90  = Rotation{0, 1, -1, 0}
	UCW180 = Rotation{-1, 0, 0, -1}
	UCW270 = Rotation{0, -1, 1, 0}
	HFlip  = Rotation{-1, 0, 0, 1}
	VFlip  = Rotation{1, 0, 0, -1}
)

// AllRotations lists the eight dihedral transforms a theorem pattern is
// instantiated under: the four rotations, the two axis flips, and the two
// flips composed with a quarter turn.
var AllRotations = [8]Rotation{
	UCW0, UCW90, UCW180, UCW270,
	HFlip, HFlip.Compose(UCW90), HFlip.Compose(UCW180), HFlip.Compose(UCW270),
}

// Compose returns the rotation equivalent to applying r first, then s.
func (r Rotation) Compose(s Rotation) Rotation {
	return Rotation{
		A: r.A*s.A + r.B*s.C,
		B: r.A*s.B + r.B*s.D,
		C: r.C*s.A + r.D*s.C,
		D: r.C*s.B + r.D*s.D,
	}
}

// Apply rotates a move by this rotation.
func (r Rotation) Apply(m Move) Move {
	return m.Mul(r)
}

// Size is a grid extent, (rows, columns), counted in cells. A Size has
// (Rows+1)*(Cols+1) lattice points and Rows*Cols cells.
type Size struct {
	Rows, Cols int
}

// PointCount returns the number of lattice points a grid of this size has.
func (s Size) PointCount() int {
	return (s.Rows + 1) * (s.Cols + 1)
}

// CellCount returns the number of cells a grid of this size has.
func (s Size) CellCount() int {
	return s.Rows * s.Cols
}

// Geom is implemented by grid-shaped values that need to report their
// extent and enumerate the lattice points they span.
type Geom interface {
	Size() Size
	Row() int
	Column() int
	Contains(p Point) bool
}

// geomSize implements the Geom accessors shared by every point-grid type.
// Contains treats p as a lattice-point coordinate, 0<=x<=Cols, 0<=y<=Rows.
type geomSize struct {
	size Size
}

func (g geomSize) Size() Size  { return g.size }
func (g geomSize) Row() int    { return g.size.Rows }
func (g geomSize) Column() int { return g.size.Cols }

func (g geomSize) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= g.size.Cols && p.Y <= g.size.Rows
}

// Points iterates every lattice point of a Size in row-major order.
func Points(size Size) []Point {
	pts := make([]Point, 0, size.PointCount())
	for y := 0; y <= size.Rows; y++ {
		for x := 0; x <= size.Cols; x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// PointsInRow lists the points of row y, left to right.
func PointsInRow(size Size, y int) []Point {
	pts := make([]Point, 0, size.Cols+1)
	for x := 0; x <= size.Cols; x++ {
		pts = append(pts, Point{x, y})
	}
	return pts
}

// PointsInColumn lists the points of column x, top to bottom.
func PointsInColumn(size Size, x int) []Point {
	pts := make([]Point, 0, size.Rows+1)
	for y := 0; y <= size.Rows; y++ {
		pts = append(pts, Point{x, y})
	}
	return pts
}
