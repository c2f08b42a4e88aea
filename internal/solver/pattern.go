package solver

import "github.com/gifnksm/slither-link-solver/internal/core"

// Ordered is satisfied by a pattern's coordinate type (core.Point while a
// theorem is still expressed relative to its own origin, core.CellId once
// it has been instantiated against a concrete puzzle); it lets EdgePattern
// normalize its two endpoints into a canonical order without caring which
// coordinate space it is working in.
type Ordered[T any] interface {
	Less(T) bool
}

// MatchResult is the outcome of testing a pattern (or a whole theorem)
// against the current SideMap.
type MatchResult int

const (
	// ResultComplete means every constituent matched; the theorem's
	// result edges can be applied.
	ResultComplete MatchResult = iota
	// ResultPartial means at least one constituent is still Unknown.
	ResultPartial
	// ResultConflict means a constituent contradicts the pattern.
	ResultConflict
)

// HintPattern matches a single cell's hint. Per srither-core's
// pattern.rs, a hint pattern never partially matches: either the puzzle's
// hint at that point is exactly the expected value (Complete) or it is not
// (Conflict) — there is no "Unknown hint".
type HintPattern struct {
	Hint  core.Hint
	Point core.Point
}

// Rotate returns the pattern with its point rotated about the origin.
func (hp HintPattern) Rotate(r core.Rotation) HintPattern {
	m := r.Apply(core.Move{X: hp.Point.X, Y: hp.Point.Y})
	return HintPattern{Hint: hp.Hint, Point: core.Point{X: m.X, Y: m.Y}}
}

// Shift translates the pattern by d.
func (hp HintPattern) Shift(d core.Move) HintPattern {
	return HintPattern{Hint: hp.Hint, Point: hp.Point.Add(d)}
}

// Matches checks the pattern against a concrete puzzle's hint at the same
// point.
func (hp HintPattern) Matches(pz *core.Puzzle) MatchResult {
	size := pz.Size()
	if hp.Point.X < 0 || hp.Point.Y < 0 || hp.Point.X >= size.Cols || hp.Point.Y >= size.Rows {
		return ResultConflict
	}
	if pz.Hint(hp.Point) == hp.Hint {
		return ResultComplete
	}
	return ResultConflict
}

// EdgePattern matches one edge, expressed as the pair of cells it
// separates and whether that edge must be Line or Cross. P is
// core.Point while the pattern is still theorem-relative, core.CellId once
// instantiated.
type EdgePattern[P Ordered[P]] struct {
	Edge core.Edge
	P0   P
	P1   P
}

// Normalized returns the pattern with its two endpoints in canonical
// (smaller-first) order, so that two edge patterns naming the same edge in
// either order compare equal.
func (ep EdgePattern[P]) Normalized() EdgePattern[P] {
	if ep.P1.Less(ep.P0) {
		ep.P0, ep.P1 = ep.P1, ep.P0
	}
	return ep
}

// Cross builds a normalized Cross edge pattern between p0 and p1.
func Cross[P Ordered[P]](p0, p1 P) EdgePattern[P] {
	return EdgePattern[P]{Edge: core.Cross, P0: p0, P1: p1}.Normalized()
}

// LineEdge builds a normalized Line edge pattern between p0 and p1.
func LineEdge[P Ordered[P]](p0, p1 P) EdgePattern[P] {
	return EdgePattern[P]{Edge: core.Line, P0: p0, P1: p1}.Normalized()
}

// RotatePoint rotates a core.Point edge pattern about the origin,
// renormalizing afterward since rotation can swap which endpoint sorts
// first.
func RotatePoint(ep EdgePattern[core.Point], r core.Rotation) EdgePattern[core.Point] {
	m0 := r.Apply(core.Move{X: ep.P0.X, Y: ep.P0.Y})
	m1 := r.Apply(core.Move{X: ep.P1.X, Y: ep.P1.Y})
	out := EdgePattern[core.Point]{
		Edge: ep.Edge,
		P0:   core.Point{X: m0.X, Y: m0.Y},
		P1:   core.Point{X: m1.X, Y: m1.Y},
	}
	return out.Normalized()
}

// ShiftPoint translates a core.Point edge pattern by d, renormalizing
// afterward.
func ShiftPoint(ep EdgePattern[core.Point], d core.Move) EdgePattern[core.Point] {
	out := EdgePattern[core.Point]{Edge: ep.Edge, P0: ep.P0.Add(d), P1: ep.P1.Add(d)}
	return out.Normalized()
}

// ToCellId converts a theorem-relative point edge pattern into a
// puzzle-concrete cell edge pattern.
func ToCellId(size core.Size, ep EdgePattern[core.Point]) EdgePattern[core.CellId] {
	out := EdgePattern[core.CellId]{
		Edge: ep.Edge,
		P0:   core.CellIdOf(size, ep.P0),
		P1:   core.CellIdOf(size, ep.P1),
	}
	return out.Normalized()
}

// MatchCellEdge tests a cell-indexed edge pattern against the SideMap.
func MatchCellEdge(ep EdgePattern[core.CellId], sm *SideMap) MatchResult {
	switch sm.GetEdge(ep.P0, ep.P1) {
	case EdgeConflict:
		return ResultConflict
	case EdgeFixedLine:
		if ep.Edge == core.Line {
			return ResultComplete
		}
		return ResultConflict
	case EdgeFixedCross:
		if ep.Edge == core.Cross {
			return ResultComplete
		}
		return ResultConflict
	default:
		return ResultPartial
	}
}

// ApplyCellEdge writes a resolved edge pattern into the SideMap.
func ApplyCellEdge(ep EdgePattern[core.CellId], sm *SideMap) {
	sm.SetEdge(ep.P0, ep.P1, ep.Edge)
}
