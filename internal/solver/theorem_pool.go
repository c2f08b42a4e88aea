package solver

import (
	"sort"

	"github.com/gifnksm/slither-link-solver/internal/core"
)

type edgeKey struct {
	A, B core.CellId
}

func edgeKeyOf(ep EdgePattern[core.CellId]) edgeKey {
	if ep.P1.Less(ep.P0) {
		return edgeKey{ep.P1, ep.P0}
	}
	return edgeKey{ep.P0, ep.P1}
}

// TheoremPool holds every instantiation (rotation x shift) of the theorem
// corpus against one concrete puzzle that did not immediately resolve
// completely, indexed by the edges each one is still waiting on so a
// single newly-fixed edge only wakes the partials that could possibly
// care about it.
//
// Grounded on srither-solver/src/model/theorem_pool.rs.
type TheoremPool struct {
	partials   []*PartialTheorem // entries go nil once fully resolved
	dependents map[edgeKey][]int // immutable once built; safe to share across clones
}

func newTheoremPool() *TheoremPool {
	return &TheoremPool{dependents: map[edgeKey][]int{}}
}

// candidateShifts lists every displacement worth trying for a theorem
// against this puzzle: if the theorem has a head hint, only positions
// that land it on a matching puzzle hint (the same restriction
// create_matcher_list uses, since a hint pattern never partially
// matches — trying every other shift is guaranteed Conflict); otherwise
// every shift whose bounding box overlaps the grid at all.
func candidateShifts(pz *core.Puzzle, th *Theorem) []core.Move {
	size := pz.Size()
	if head, ok := th.Head(); ok {
		var shifts []core.Move
		for y := 0; y < size.Rows; y++ {
			for x := 0; x < size.Cols; x++ {
				if pz.Hint(core.Point{X: x, Y: y}) == head.Hint {
					shifts = append(shifts, core.Move{X: x - head.Point.X, Y: y - head.Point.Y})
				}
			}
		}
		return shifts
	}

	var shifts []core.Move
	for y := -th.Size.Rows; y <= size.Rows; y++ {
		for x := -th.Size.Cols; x <= size.Cols; x++ {
			shifts = append(shifts, core.Move{X: x, Y: y})
		}
	}
	return shifts
}

// NewTheoremPool instantiates every theorem's rotations across every
// plausible position on pz, collecting the result edges of whatever matches
// completely and parking the rest as partials. It does not modify sm; it
// returns the pool and the collected edges for the caller to apply.
func NewTheoremPool(pz *core.Puzzle, sm *SideMap, theorems []*Theorem) (*TheoremPool, []EdgePattern[core.CellId], error) {
	tp := newTheoremPool()
	var fired []EdgePattern[core.CellId]

	for _, base := range theorems {
		for _, th := range base.AllRotations() {
			for _, d := range candidateShifts(pz, th) {
				result, resultEdges, partial := th.ShiftMatches(d, pz, sm)
				switch result {
				case ResultComplete:
					fired = append(fired, resultEdges...)
				case ResultPartial:
					tp.partials = append(tp.partials, partial)
				}
			}
		}
	}

	tp.mergeDuplicates()
	return tp, fired, nil
}

func partialLess(a, b *PartialTheorem) bool {
	n := len(a.Matcher)
	if len(b.Matcher) < n {
		n = len(b.Matcher)
	}
	for i := 0; i < n; i++ {
		ea, eb := a.Matcher[i], b.Matcher[i]
		if ea != eb {
			if ea.P0 != eb.P0 {
				return ea.P0.Less(eb.P0)
			}
			if ea.P1 != eb.P1 {
				return ea.P1.Less(eb.P1)
			}
			return ea.Edge < eb.Edge
		}
	}
	return len(a.Matcher) < len(b.Matcher)
}

// mergeDuplicates folds together partials that ended up waiting on the
// exact same set of matcher edges — common once every rotation/shift of
// every theorem has been tried — into one, unioning their results, then
// (re)builds the edge->dependents index.
func (tp *TheoremPool) mergeDuplicates() {
	sort.Slice(tp.partials, func(i, j int) bool { return partialLess(tp.partials[i], tp.partials[j]) })

	merged := tp.partials[:0]
	for _, pt := range tp.partials {
		if len(merged) > 0 && edgeListEqual(merged[len(merged)-1].Matcher, pt.Matcher) {
			merged[len(merged)-1].Result = append(merged[len(merged)-1].Result, pt.Result...)
			continue
		}
		merged = append(merged, pt)
	}
	tp.partials = merged

	tp.dependents = make(map[edgeKey][]int, len(tp.partials)*2)
	for idx, pt := range tp.partials {
		for _, ep := range pt.Matcher {
			k := edgeKeyOf(ep)
			tp.dependents[k] = append(tp.dependents[k], idx)
		}
	}
}

// ApplyAll re-checks every still-pending partial against sm. Used for the
// first pass after construction and whenever a caller doesn't know which
// specific edges changed.
func (tp *TheoremPool) ApplyAll(sm *SideMap) ([]EdgePattern[core.CellId], error) {
	var fired []EdgePattern[core.CellId]
	for i, pt := range tp.partials {
		if pt == nil {
			continue
		}
		switch pt.Matches(sm) {
		case ResultConflict:
			tp.partials[i] = nil
		case ResultComplete:
			fired = append(fired, pt.Result...)
			tp.partials[i] = nil
		}
	}
	return fired, nil
}

// Update re-checks only the partials that depend on the given edge,
// exploiting the reverse index so a single newly-fixed edge costs
// O(#dependents) rather than a full rescan. Called from applyFired to drain
// the cascade a batch of just-fixed edges sets off.
func (tp *TheoremPool) Update(sm *SideMap, changed EdgePattern[core.CellId]) ([]EdgePattern[core.CellId], error) {
	ids := tp.dependents[edgeKeyOf(changed)]
	if len(ids) == 0 {
		return nil, nil
	}
	var fired []EdgePattern[core.CellId]
	for _, i := range ids {
		pt := tp.partials[i]
		if pt == nil {
			continue
		}
		switch pt.Matches(sm) {
		case ResultConflict:
			tp.partials[i] = nil
		case ResultComplete:
			fired = append(fired, pt.Result...)
			tp.partials[i] = nil
		}
	}
	return fired, nil
}

// Clone returns an independent copy. The dependents index never changes
// after construction, so it is safe to share between clones; only the
// mutable partials slice needs copying.
func (tp *TheoremPool) Clone() *TheoremPool {
	partials := make([]*PartialTheorem, len(tp.partials))
	for i, pt := range tp.partials {
		if pt == nil {
			continue
		}
		clone := &PartialTheorem{
			Matcher: append([]EdgePattern[core.CellId](nil), pt.Matcher...),
			Result:  pt.Result, // read-only once computed
		}
		partials[i] = clone
	}
	return &TheoremPool{partials: partials, dependents: tp.dependents}
}
