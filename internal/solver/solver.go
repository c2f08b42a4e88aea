package solver

import (
	"errors"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/gifnksm/slither-link-solver/pkg/constants"
)

// isInvalidBoard reports whether err is (or wraps) an InvalidBoard Error.
func isInvalidBoard(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == InvalidBoard
}

// State is one node of the solve search: a concrete SideMap/ConnectMap/
// TheoremPool triple for one puzzle. Branching clones a State rather than
// keeping an undo log.
type State struct {
	pz *core.Puzzle // shared, read-only across every clone
	sm *SideMap
	cm *ConnectMap
	tp *TheoremPool
}

func newState(pz *core.Puzzle, theorems []*Theorem) (*State, error) {
	sm := FromPuzzle(pz)
	tp, fired, err := NewTheoremPool(pz, sm, theorems)
	if err != nil {
		return nil, err
	}
	if err := applyFired(sm, tp, fired); err != nil {
		return nil, err
	}
	if sm.HasConflict() {
		return nil, invalidBoard("puzzle's fixed edges are already contradictory")
	}
	cm, err := NewConnectMap(pz, sm)
	if err != nil {
		return nil, err
	}
	s := &State{pz: pz, sm: sm, cm: cm, tp: tp}
	if err := s.solveFixedPoint(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyFired applies every edge in fired to sm, then drains the cascade of
// partials each one completes with tp.Update rather than a full ApplyAll
// rescan: Update's edge->dependents index lets a newly-fixed edge wake only
// the partials that could possibly care about it.
func applyFired(sm *SideMap, tp *TheoremPool, fired []EdgePattern[core.CellId]) error {
	worklist := append([]EdgePattern[core.CellId](nil), fired...)
	for len(worklist) > 0 {
		ep := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		ApplyCellEdge(ep, sm)
		more, err := tp.Update(sm, ep)
		if err != nil {
			return err
		}
		worklist = append(worklist, more...)
	}
	return nil
}

func (s *State) clone() *State {
	return &State{pz: s.pz, sm: s.sm.Clone(), cm: s.cm.Clone(), tp: s.tp.Clone()}
}

// solveFixedPoint repeatedly applies the theorem pool and, once it stalls,
// the connectivity step, until neither advances the SideMap's revision
// counter. Idempotent: a second call with nothing new to learn returns
// immediately.
//
// Grounded on srither-solver/src/lib.rs's fill_absolutely_fixed.
func (s *State) solveFixedPoint() error {
	for steps := 0; ; steps++ {
		if steps > constants.MaxSolverSteps {
			return invalidBoard("exceeded maximum propagation steps")
		}

		before := s.sm.Revision()
		fired, err := s.tp.ApplyAll(s.sm)
		if err != nil {
			return err
		}
		if err := applyFired(s.sm, s.tp, fired); err != nil {
			return err
		}
		if s.sm.HasConflict() {
			return invalidBoard("side map reached a contradiction")
		}
		if s.sm.Revision() != before {
			continue
		}

		if _, err := s.cm.Sync(s.pz, s.sm); err != nil {
			return err
		}
		changed, err := RunConnectivity(s.sm, s.cm)
		if err != nil {
			return err
		}
		if s.sm.HasConflict() {
			return invalidBoard("side map reached a contradiction")
		}
		if changed {
			continue
		}
		return nil
	}
}

// unknownCandidates lists every interior cell whose side is not yet fixed.
func (s *State) unknownCandidates() []core.CellId {
	n := s.pz.Size().CellCount()
	var out []core.CellId
	for id := 1; id <= n; id++ {
		cid := core.CellId(id)
		if s.sm.GetSide(cid) == SideUnknown {
			out = append(out, cid)
		}
	}
	return out
}

// shallowBacktrack tries each candidate cell both ways on a throwaway
// clone: if one direction dead-ends, the other is forced; if neither
// dead-ends, whatever the two hypothetical futures agree on is fixed for
// real. It reports whether it advanced the SideMap.
//
// Grounded on srither-solver/src/lib.rs's fill_by_shallow_backtracking.
func (s *State) shallowBacktrack(candidates []core.CellId) (bool, error) {
	before := s.sm.Revision()
	for _, p := range candidates {
		if s.sm.GetSide(p) != SideUnknown {
			continue
		}

		sIn := s.clone()
		sIn.sm.SetInside(p)
		if err := sIn.solveFixedPoint(); err != nil {
			if !isInvalidBoard(err) {
				return false, err
			}
			s.sm.SetOutside(p)
			if err := s.solveFixedPoint(); err != nil {
				return false, err
			}
			continue
		}

		sOut := s.clone()
		sOut.sm.SetOutside(p)
		if err := sOut.solveFixedPoint(); err != nil {
			if !isInvalidBoard(err) {
				return false, err
			}
			s.sm, s.cm, s.tp = sIn.sm, sIn.cm, sIn.tp
			continue
		}

		mergeAgreements(s, sIn, sOut)
	}
	return s.sm.Revision() != before, nil
}

// mergeAgreements fixes on s every cell side and every cell-pair edge that
// sIn and sOut, two hypothetical continuations of s, happen to agree on.
func mergeAgreements(s, sIn, sOut *State) {
	size := s.pz.Size()
	n := size.CellCount()
	for id := 0; id <= n; id++ {
		cid := core.CellId(id)
		side := sIn.sm.GetSide(cid)
		if side != SideUnknown && side != SideConflict && side == sOut.sm.GetSide(cid) {
			s.sm.SetSide(cid, coreSideOf(side))
		}
	}
	for _, pair := range adjacentPairs(size) {
		e := sIn.sm.GetEdge(pair.A, pair.B)
		if e == EdgeUnknown || e == EdgeConflict || e != sOut.sm.GetEdge(pair.A, pair.B) {
			continue
		}
		edge := core.Cross
		if e == EdgeFixedLine {
			edge = core.Line
		}
		s.sm.SetEdge(pair.A, pair.B, edge)
	}
}

// chooseBranchCell picks the deep-search branching cell: fewest unknown
// edges in its ConnectMap area, ties broken by smallest CellId.
func (s *State) chooseBranchCell(candidates []core.CellId) core.CellId {
	best := candidates[0]
	bestCount := len(s.cm.Get(best).UnknownEdges)
	for _, c := range candidates[1:] {
		count := len(s.cm.Get(c).UnknownEdges)
		if count < bestCount || (count == bestCount && c < best) {
			best, bestCount = c, count
		}
	}
	return best
}

// validate checks a fully-labeled state: the contracted same-side graph
// must resolve to exactly two areas (inside and outside), or, for a puzzle
// whose hints sum to zero, to a single all-outside area.
func (s *State) validate() (*core.Puzzle, bool) {
	if _, err := s.cm.Sync(s.pz, s.sm); err != nil {
		return nil, false
	}
	if n := s.cm.CountArea(); n != 2 && !(n == 1 && s.cm.SumOfHint() == 0) {
		return nil, false
	}
	return s.toPuzzle(), true
}

// toPuzzle materializes the SideMap's edge assignments onto a copy of the
// original puzzle.
func (s *State) toPuzzle() *core.Puzzle {
	out := s.pz.Clone()
	size := out.Size()
	for y := 0; y <= size.Rows; y++ {
		for x := 0; x < size.Cols; x++ {
			top := core.CellIdOf(size, core.Point{X: x, Y: y - 1})
			bottom := core.CellIdOf(size, core.Point{X: x, Y: y})
			switch s.sm.GetEdge(top, bottom) {
			case EdgeFixedLine:
				out.SetEdgeH(x, y, core.Line)
			case EdgeFixedCross:
				out.SetEdgeH(x, y, core.Cross)
			}
		}
	}
	for y := 0; y < size.Rows; y++ {
		for x := 0; x <= size.Cols; x++ {
			left := core.CellIdOf(size, core.Point{X: x - 1, Y: y})
			right := core.CellIdOf(size, core.Point{X: x, Y: y})
			switch s.sm.GetEdge(left, right) {
			case EdgeFixedLine:
				out.SetEdgeV(x, y, core.Line)
			case EdgeFixedCross:
				out.SetEdgeV(x, y, core.Cross)
			}
		}
	}
	return out
}

// Solutions enumerates every valid labeling of a puzzle, deterministically
// and without duplicates. It follows the database/sql.Rows /
// bufio.Scanner iteration idiom (Next/Puzzle) rather than a closure or
// channel, since none of the example repos model an explicit pull-based
// iterator and this is the standard-library shape for one.
type Solutions struct {
	stack []*State
	cur   *core.Puzzle
}

// NewSolutions builds the enumeration iterator for pz against theorems. A
// puzzle whose fixed edges are already contradictory yields an iterator
// with no solutions rather than an error, matching solve_fixed_point's
// "Conflict kills only the branch" policy applied to the single initial
// branch.
func NewSolutions(pz *core.Puzzle, theorems []*Theorem) (*Solutions, error) {
	s0, err := newState(pz, theorems)
	if err != nil {
		if isInvalidBoard(err) {
			return &Solutions{}, nil
		}
		return nil, err
	}
	return &Solutions{stack: []*State{s0}}, nil
}

func (it *Solutions) push(s *State) { it.stack = append(it.stack, s) }

func (it *Solutions) pop() (*State, bool) {
	n := len(it.stack)
	if n == 0 {
		return nil, false
	}
	s := it.stack[n-1]
	it.stack = it.stack[:n-1]
	return s, true
}

// Next advances to the next solution. Call Puzzle to read it.
func (it *Solutions) Next() bool {
	for {
		s, ok := it.pop()
		if !ok {
			return false
		}
		if pz, found := it.step(s); found {
			it.cur = pz
			return true
		}
	}
}

// Puzzle returns the solution found by the most recent call to Next that
// returned true.
func (it *Solutions) Puzzle() *core.Puzzle { return it.cur }

// step fully resolves one popped state: it propagates, shallow-backtracks
// each remaining candidate until that stalls too, and then either returns
// a validated solution, drops a dead/rejected branch, or pushes the two
// branches of the next backtracking choice (inside last, so it is popped
// — and explored — first).
//
// Grounded on srither-solver/src/lib.rs's Solutions::next.
func (it *Solutions) step(s *State) (*core.Puzzle, bool) {
	if err := s.solveFixedPoint(); err != nil {
		return nil, false
	}
	if s.sm.AllFilled() {
		return s.validate()
	}

	for {
		candidates := s.unknownCandidates()
		if len(candidates) == 0 {
			break
		}
		changed, err := s.shallowBacktrack(candidates)
		if err != nil {
			return nil, false
		}
		if !changed {
			break
		}
	}

	if s.sm.AllFilled() {
		return s.validate()
	}

	candidates := s.unknownCandidates()
	if len(candidates) == 0 {
		return nil, false
	}
	branch := s.chooseBranchCell(candidates)

	outState := s.clone()
	outState.sm.SetOutside(branch)
	inState := s.clone()
	inState.sm.SetInside(branch)
	it.push(outState)
	it.push(inState)
	return nil, false
}

// Solve returns the first solution of pz using the built-in theorem
// corpus, or an InvalidBoard error if none exists.
func Solve(pz *core.Puzzle) (*core.Puzzle, error) {
	theorems, err := BuiltinTheorems()
	if err != nil {
		return nil, err
	}
	return SolveWithTheorems(pz, theorems)
}

// SolveWithTheorems is Solve parameterized over the theorem corpus, so a
// caller can merge in an externally supplied set (see pkg/config's
// TheoremFile).
func SolveWithTheorems(pz *core.Puzzle, theorems []*Theorem) (*core.Puzzle, error) {
	it, err := NewSolutions(pz, theorems)
	if err != nil {
		return nil, err
	}
	if it.Next() {
		return it.Puzzle(), nil
	}
	return nil, invalidBoard("puzzle has no solution")
}
