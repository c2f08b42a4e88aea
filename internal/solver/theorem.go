package solver

import (
	"fmt"
	"sort"

	"github.com/gifnksm/slither-link-solver/internal/core"
)

// ClosedHint guards against a theorem firing a tiny self-contained loop
// that happens to satisfy every local pattern but would, on its own,
// already account for the puzzle's entire hint total — which can only be
// valid if the "loop" really is the whole solution, not a stray pocket of
// it. See Theorem.ShiftMatches.
type ClosedHint struct {
	Sum      int
	Patterns []HintPattern
}

// Theorem is one local rewrite rule: if every hint and edge in the matcher
// holds, every edge in the result can be fixed. Theorems are expressed
// relative to an arbitrary local origin and get shifted across every
// position of a concrete puzzle (see TheoremPool) and rotated into all
// eight dihedral orientations (see AllRotations).
//
// Grounded on srither-solver/src/model/theorem/mod.rs.
type Theorem struct {
	Size        core.Size
	HintMatcher []HintPattern
	EdgeMatcher []EdgePattern[core.Point]
	Result      []EdgePattern[core.Point]
	ClosedHint  *ClosedHint
}

// Head returns the theorem's first hint pattern, used by TheoremPool to
// index theorems by the hint value they anchor on.
func (t *Theorem) Head() (HintPattern, bool) {
	if len(t.HintMatcher) == 0 {
		return HintPattern{}, false
	}
	return t.HintMatcher[0], true
}

func boundingMin(hints []HintPattern, edgeLists ...[]EdgePattern[core.Point]) (int, int) {
	minX, minY := 0, 0
	first := true
	consider := func(p core.Point) {
		if first || p.X < minX {
			minX = p.X
		}
		if first || p.Y < minY {
			minY = p.Y
		}
		first = false
	}
	for _, h := range hints {
		consider(h.Point)
	}
	for _, es := range edgeLists {
		for _, e := range es {
			consider(e.P0)
			consider(e.P1)
		}
	}
	return minX, minY
}

func rotateHints(hs []HintPattern, r core.Rotation) []HintPattern {
	out := make([]HintPattern, len(hs))
	for i, h := range hs {
		out[i] = h.Rotate(r)
	}
	return out
}

func rotateEdges(es []EdgePattern[core.Point], r core.Rotation) []EdgePattern[core.Point] {
	out := make([]EdgePattern[core.Point], len(es))
	for i, e := range es {
		out[i] = RotatePoint(e, r)
	}
	return out
}

func shiftHints(hs []HintPattern, d core.Move) []HintPattern {
	out := make([]HintPattern, len(hs))
	for i, h := range hs {
		out[i] = h.Shift(d)
	}
	return out
}

func shiftEdges(es []EdgePattern[core.Point], d core.Move) []EdgePattern[core.Point] {
	out := make([]EdgePattern[core.Point], len(es))
	for i, e := range es {
		out[i] = ShiftPoint(e, d)
	}
	return out
}

func sortDedupHints(hs []HintPattern) []HintPattern {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].Point != hs[j].Point {
			return hs[i].Point.Less(hs[j].Point)
		}
		return hs[i].Hint < hs[j].Hint
	})
	out := hs[:0]
	for i, h := range hs {
		if i == 0 || h != hs[i-1] {
			out = append(out, h)
		}
	}
	return out
}

func sortDedupEdges(es []EdgePattern[core.Point]) []EdgePattern[core.Point] {
	sort.Slice(es, func(i, j int) bool {
		if es[i].P0 != es[j].P0 {
			return es[i].P0.Less(es[j].P0)
		}
		if es[i].P1 != es[j].P1 {
			return es[i].P1.Less(es[j].P1)
		}
		return es[i].Edge < es[j].Edge
	})
	out := es[:0]
	for i, e := range es {
		if i == 0 || e != es[i-1] {
			out = append(out, e)
		}
	}
	return out
}

// Rotate returns the theorem transformed by r: every pattern is rotated
// about the origin, then the whole set is shifted so the minimum corner of
// the bounding box over every hint point and edge endpoint sits at (0, 0).
func (t *Theorem) Rotate(r core.Rotation) *Theorem {
	mh := rotateHints(t.HintMatcher, r)
	me := rotateEdges(t.EdgeMatcher, r)
	rs := rotateEdges(t.Result, r)
	var ch []HintPattern
	if t.ClosedHint != nil {
		ch = rotateHints(t.ClosedHint.Patterns, r)
	}

	minX, minY := boundingMin(append(append([]HintPattern(nil), mh...), ch...), me, rs)
	d := core.Move{X: -minX, Y: -minY}

	mh = sortDedupHints(shiftHints(mh, d))
	me = sortDedupEdges(shiftEdges(me, d))
	rs = sortDedupEdges(shiftEdges(rs, d))

	// A quarter-turn rotation (composed or not) has a zero A coefficient:
	// the new X coordinate no longer depends on the old X, it depends on
	// old Y instead. That is exactly when rows and columns swap.
	newSize := t.Size
	if r.A == 0 {
		newSize = core.Size{Rows: t.Size.Cols, Cols: t.Size.Rows}
	}

	var newClosed *ClosedHint
	if t.ClosedHint != nil {
		ch = sortDedupHints(shiftHints(ch, d))
		newClosed = &ClosedHint{Sum: t.ClosedHint.Sum, Patterns: ch}
	}
	return &Theorem{Size: newSize, HintMatcher: mh, EdgeMatcher: me, Result: rs, ClosedHint: newClosed}
}

func (t *Theorem) key() string {
	return fmt.Sprintf("%v|%v|%v|%v", t.Size, t.HintMatcher, t.EdgeMatcher, t.Result)
}

// AllRotations instantiates the theorem under all eight dihedral
// transforms, deduplicating any that coincide (a symmetric theorem maps to
// itself under some rotations).
func (t *Theorem) AllRotations() []*Theorem {
	seen := make(map[string]bool, 8)
	out := make([]*Theorem, 0, 8)
	for _, r := range core.AllRotations {
		rt := t.Rotate(r)
		k := rt.key()
		if !seen[k] {
			seen[k] = true
			out = append(out, rt)
		}
	}
	return out
}

// PartialTheorem is a theorem instantiation still waiting on some of its
// matcher edges to resolve. TheoremPool indexes these by the edges they
// depend on so a single SideMap update only re-checks the partials that
// could possibly have changed.
type PartialTheorem struct {
	Matcher []EdgePattern[core.CellId]
	Result  []EdgePattern[core.CellId]
}

// Matches re-checks the partial's remaining matcher edges. On ResultPartial
// it prunes Matcher down to only the edges still unresolved, so repeated
// calls do decreasing work.
func (pt *PartialTheorem) Matches(sm *SideMap) MatchResult {
	remaining := pt.Matcher[:0]
	for _, ep := range pt.Matcher {
		switch MatchCellEdge(ep, sm) {
		case ResultConflict:
			return ResultConflict
		case ResultPartial:
			remaining = append(remaining, ep)
		}
	}
	pt.Matcher = remaining
	if len(pt.Matcher) == 0 {
		return ResultComplete
	}
	return ResultPartial
}

func edgeListEqual(a, b []EdgePattern[core.CellId]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Merge combines two partial theorems that share the exact same remaining
// matcher into one, OR-ing their results. Returns false if the matchers
// differ.
func (pt *PartialTheorem) Merge(other *PartialTheorem) bool {
	if !edgeListEqual(pt.Matcher, other.Matcher) {
		return false
	}
	pt.Result = append(pt.Result, other.Result...)
	return true
}

// ShiftMatches is the core of theorem application: translate the theorem
// by shift and test it against a concrete puzzle and SideMap.
//
//  1. Every hint pattern must match exactly, or the theorem is
//     inapplicable here (Conflict, not an error — it just doesn't fire).
//  2. Every edge pattern is classified Complete/Partial/Conflict.
//  3. If the closed-hint set is present, fully matched, and its sum
//     equals the puzzle's total hint sum, firing the result would close
//     off a self-contained loop smaller than the whole puzzle — Conflict.
//  4. With no partial edges, the theorem fires completely.
//  5. Otherwise it is parked as a PartialTheorem waiting on those edges.
func (t *Theorem) ShiftMatches(shift core.Move, pz *core.Puzzle, sm *SideMap) (MatchResult, []EdgePattern[core.CellId], *PartialTheorem) {
	for _, hp := range t.HintMatcher {
		if hp.Shift(shift).Matches(pz) != ResultComplete {
			return ResultConflict, nil, nil
		}
	}

	var partial []EdgePattern[core.CellId]
	cells := make([]EdgePattern[core.CellId], len(t.EdgeMatcher))
	for i, ep := range t.EdgeMatcher {
		cep := ToCellId(pz.Size(), ShiftPoint(ep, shift))
		cells[i] = cep
		switch MatchCellEdge(cep, sm) {
		case ResultConflict:
			return ResultConflict, nil, nil
		case ResultPartial:
			partial = append(partial, cep)
		}
	}

	if t.ClosedHint != nil {
		sum := 0
		saturated := true
		for _, hp := range t.ClosedHint.Patterns {
			shifted := hp.Shift(shift)
			if shifted.Matches(pz) != ResultComplete {
				saturated = false
				break
			}
			sum += int(shifted.Hint)
		}
		if saturated && sum == pz.SumOfHint() {
			return ResultConflict, nil, nil
		}
	}

	resultCells := make([]EdgePattern[core.CellId], len(t.Result))
	for i, ep := range t.Result {
		resultCells[i] = ToCellId(pz.Size(), ShiftPoint(ep, shift))
	}

	if len(partial) == 0 {
		return ResultComplete, resultCells, nil
	}
	return ResultPartial, nil, &PartialTheorem{Matcher: partial, Result: resultCells}
}
