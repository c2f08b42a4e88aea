package solver

import "github.com/gifnksm/slither-link-solver/internal/core"

// SideState is the resolved state of a cell's side, as reported by
// SideMap.GetSide.
type SideState int

const (
	SideUnknown SideState = iota
	SideFixedOut
	SideFixedIn
	SideConflict
)

// EdgeState is the resolved state of an edge between two adjacent cells,
// as reported by SideMap.GetEdge.
type EdgeState int

const (
	EdgeUnknown EdgeState = iota
	EdgeFixedLine
	EdgeFixedCross
	EdgeConflict
)

// SideMap is the solver's core model: for every cell, is it inside or
// outside the loop? Rather than storing a tri-state per cell directly, it
// encodes two assertions per cell in a single union-find — "this cell is
// Out" (key0) and "this cell is In" (key1) — and lets union-find equality
// answer same-side/different-side/fixed-side queries in O(α(n)), with no
// separate bookkeeping pass needed when a region's side becomes known.
// This is the single most load-bearing shape choice in the whole solver:
// every propagation step is just a handful of unions and Find comparisons.
//
// Grounded on srither-solver/src/model/side_map.rs.
type SideMap struct {
	uf          *Uf[struct{}]
	revision    int
	maxRevision int
}

func key0(id core.CellId) int { return int(id) * 2 }
func key1(id core.CellId) int { return int(id)*2 + 1 }

const (
	outsideKey0 = 0 // key0(OutsideCellId)
	outsideKey1 = 1 // key1(OutsideCellId)
)

// NewSideMap builds a SideMap for a puzzle of the given size, with every
// cell Unknown except the implicit exterior, which is fixed Out.
func NewSideMap(size core.Size) *SideMap {
	n := size.CellCount() + 1 // + the outside sentinel cell
	values := make([]struct{}, n*2)
	return &SideMap{
		uf:          NewUf(values),
		maxRevision: size.Rows * size.Cols,
	}
}

// Revision counts how many set_same/set_different calls actually merged
// two previously-distinct classes; the solver loop watches this to detect
// a fixed point.
func (sm *SideMap) Revision() int { return sm.revision }

// AllFilled reports whether every cell's side could possibly be resolved:
// revision has reached its theoretical ceiling of rows*cols distinct
// same/different assertions.
func (sm *SideMap) AllFilled() bool { return sm.revision >= sm.maxRevision }

func noop(struct{}, struct{}) struct{} { return struct{}{} }

func (sm *SideMap) union(a, b int) bool {
	return sm.uf.Union(a, b, noop)
}

// GetSide resolves the side of cell id.
func (sm *SideMap) GetSide(id core.CellId) SideState {
	out0 := sm.uf.Find(outsideKey0)
	out1 := sm.uf.Find(outsideKey1)
	if out0 == out1 {
		return SideConflict
	}
	k0 := sm.uf.Find(key0(id))
	k1 := sm.uf.Find(key1(id))
	switch {
	case k0 == out0 && k1 == out1:
		return SideFixedOut
	case k0 == out1 && k1 == out0:
		return SideFixedIn
	case k0 == k1:
		return SideConflict
	default:
		return SideUnknown
	}
}

// GetEdge resolves the edge between two adjacent cells a and b (either may
// be OutsideCellId).
func (sm *SideMap) GetEdge(a, b core.CellId) EdgeState {
	same := sm.uf.Same(key0(a), key0(b))
	diff := sm.uf.Same(key0(a), key1(b))
	switch {
	case same && diff:
		return EdgeConflict
	case same:
		return EdgeFixedCross
	case diff:
		return EdgeFixedLine
	default:
		return EdgeUnknown
	}
}

// SetSame asserts that a and b are on the same side. Returns whether this
// added new information (and so bumped the revision counter).
func (sm *SideMap) SetSame(a, b core.CellId) bool {
	c1 := sm.union(key0(a), key0(b))
	c2 := sm.union(key1(a), key1(b))
	changed := c1 || c2
	if changed {
		sm.revision++
	}
	return changed
}

// SetDifferent asserts that a and b are on opposite sides.
func (sm *SideMap) SetDifferent(a, b core.CellId) bool {
	c1 := sm.union(key0(a), key1(b))
	c2 := sm.union(key1(a), key0(b))
	changed := c1 || c2
	if changed {
		sm.revision++
	}
	return changed
}

// SetSide fixes the side of a cell directly, relative to the exterior.
func (sm *SideMap) SetSide(id core.CellId, side core.Side) bool {
	if side == core.Out {
		return sm.SetSame(id, core.OutsideCellId)
	}
	return sm.SetDifferent(id, core.OutsideCellId)
}

// SetOutside fixes cell id to be outside the loop.
func (sm *SideMap) SetOutside(id core.CellId) bool { return sm.SetSide(id, core.Out) }

// SetInside fixes cell id to be inside the loop.
func (sm *SideMap) SetInside(id core.CellId) bool { return sm.SetSide(id, core.In) }

// SetEdge fixes the edge between two adjacent cells.
func (sm *SideMap) SetEdge(a, b core.CellId, edge core.Edge) bool {
	if edge == core.Cross {
		return sm.SetSame(a, b)
	}
	return sm.SetDifferent(a, b)
}

// HasConflict reports whether the map has reached a global contradiction
// (the exterior's own two assertion-classes collapsed together).
func (sm *SideMap) HasConflict() bool {
	return sm.uf.Find(outsideKey0) == sm.uf.Find(outsideKey1)
}

// Clone returns an independent deep copy, cheap because the underlying
// union-find is flat slices.
func (sm *SideMap) Clone() *SideMap {
	return &SideMap{
		uf:          sm.uf.Clone(),
		revision:    sm.revision,
		maxRevision: sm.maxRevision,
	}
}

// FromPuzzle seeds a SideMap from any edges the puzzle already fixes (a
// Shape A drawing can mark edges with '-', '|' or 'x'), the way
// srither-core's `From<&Puzzle> for SideMap` does. Hints are not seeded.
func FromPuzzle(pz *core.Puzzle) *SideMap {
	sm := NewSideMap(pz.Size())
	rows, cols := pz.Row(), pz.Column()
	for y := 0; y < rows; y++ {
		for x := 0; x <= cols; x++ {
			if e, ok := pz.EdgeV(x, y); ok {
				left := core.CellIdOf(pz.Size(), core.Point{X: x - 1, Y: y})
				right := core.CellIdOf(pz.Size(), core.Point{X: x, Y: y})
				sm.SetEdge(left, right, e)
			}
		}
	}
	for y := 0; y <= rows; y++ {
		for x := 0; x < cols; x++ {
			if e, ok := pz.EdgeH(x, y); ok {
				top := core.CellIdOf(pz.Size(), core.Point{X: x, Y: y - 1})
				bottom := core.CellIdOf(pz.Size(), core.Point{X: x, Y: y})
				sm.SetEdge(top, bottom, e)
			}
		}
	}
	return sm
}
