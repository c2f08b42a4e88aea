package solver

import "github.com/gifnksm/slither-link-solver/internal/core"

// EdgePair names the two cells an edge separates.
type EdgePair struct {
	A, B core.CellId
}

// Area is a maximal block of cells known to share a side, the unit
// ConnectMap's union-find tracks. Grounded on
// srither-solver/src/model/connect_map.rs's Area.
type Area struct {
	// Coord is the smallest CellId in the area, used as a stable
	// representative identity independent of which cell the union-find
	// happens to pick as root.
	Coord core.CellId
	Side  SideState
	// UnknownEdges lists the area's boundary edges not yet fixed to
	// Line/Cross. An empty list means the area's full perimeter is
	// already determined.
	UnknownEdges []EdgePair
	SumOfHint    int
	Size         int
}

func joinSide(a, b SideState) SideState {
	if a == SideUnknown {
		return b
	}
	if b == SideUnknown {
		return a
	}
	if a == b {
		return a
	}
	return SideConflict
}

func mergeArea(a, b Area) Area {
	coord := a.Coord
	if b.Coord < coord {
		coord = b.Coord
	}
	edges := make([]EdgePair, 0, len(a.UnknownEdges)+len(b.UnknownEdges))
	edges = append(edges, a.UnknownEdges...)
	edges = append(edges, b.UnknownEdges...)
	return Area{
		Coord:        coord,
		Side:         joinSide(a.Side, b.Side),
		UnknownEdges: edges,
		SumOfHint:    a.SumOfHint + b.SumOfHint,
		Size:         a.Size + b.Size,
	}
}

// ConnectMap is a view over a SideMap answering a different question: not
// "what side is this cell on" but "which cells are already known to be
// physically joined (no Line edge can run between them)". It is rebuilt
// from the SideMap rather than maintained as a parallel structure that
// could drift out of sync.
//
// Grounded on srither-solver/src/model/connect_map.rs.
type ConnectMap struct {
	size      core.Size
	uf        *Uf[Area]
	sumOfHint int
}

func hintOf(pz *core.Puzzle, id core.CellId) int {
	if id == core.OutsideCellId {
		return 0
	}
	p := core.PointOfCellId(pz.Size(), id)
	h := pz.Hint(p)
	if h == core.NoHint {
		return 0
	}
	return int(h)
}

// adjacentPairs enumerates every pair of cells (including the exterior)
// that share an edge, each pair listed once.
func adjacentPairs(size core.Size) []EdgePair {
	pairs := make([]EdgePair, 0, size.Rows*size.Cols*2)
	for y := 0; y < size.Rows; y++ {
		for x := 0; x < size.Cols; x++ {
			id := core.CellIdOf(size, core.Point{X: x, Y: y})
			right := core.CellIdOf(size, core.Point{X: x + 1, Y: y})
			pairs = append(pairs, EdgePair{id, right})
			bottom := core.CellIdOf(size, core.Point{X: x, Y: y + 1})
			pairs = append(pairs, EdgePair{id, bottom})
		}
	}
	// Left and top borders against the exterior, not covered above.
	for y := 0; y < size.Rows; y++ {
		id := core.CellIdOf(size, core.Point{X: 0, Y: y})
		pairs = append(pairs, EdgePair{core.OutsideCellId, id})
	}
	for x := 0; x < size.Cols; x++ {
		id := core.CellIdOf(size, core.Point{X: x, Y: 0})
		pairs = append(pairs, EdgePair{core.OutsideCellId, id})
	}
	return pairs
}

// NewConnectMap builds a ConnectMap from scratch, unioning every cell pair
// the SideMap already fixes Cross and collecting every still-Unknown
// boundary edge.
func NewConnectMap(pz *core.Puzzle, sm *SideMap) (*ConnectMap, error) {
	size := pz.Size()
	n := size.CellCount() + 1
	values := make([]Area, n)
	for id := 0; id < n; id++ {
		values[id] = Area{
			Coord:     core.CellId(id),
			Side:      sm.GetSide(core.CellId(id)),
			Size:      1,
			SumOfHint: hintOf(pz, core.CellId(id)),
		}
	}
	cm := &ConnectMap{size: size, uf: NewUf(values), sumOfHint: pz.SumOfHint()}

	pairs := adjacentPairs(size)
	for _, p := range pairs {
		if sm.GetEdge(p.A, p.B) == EdgeFixedCross {
			cm.uf.Union(int(p.A), int(p.B), mergeArea)
		}
	}
	for _, p := range pairs {
		switch sm.GetEdge(p.A, p.B) {
		case EdgeUnknown:
			cm.addUnknownEdge(p.A, p.B)
		case EdgeConflict:
			return nil, invalidBoard("connect map: conflicting edge")
		}
	}
	return cm, nil
}

func (cm *ConnectMap) addUnknownEdge(a, b core.CellId) {
	av := cm.uf.Get(int(a))
	av.UnknownEdges = append(av.UnknownEdges, EdgePair{a, b})
	cm.uf.SetValue(int(a), av)
	bv := cm.uf.Get(int(b))
	bv.UnknownEdges = append(bv.UnknownEdges, EdgePair{a, b})
	cm.uf.SetValue(int(b), bv)
}

// Sync rebuilds the map against the SideMap's current state and reports
// how many areas have no remaining unknown boundary edge (fully enclosed).
// More than two such areas means the grid has already split into more
// regions than a single loop can produce — a contradiction regardless of
// how the remaining unknown edges are eventually resolved.
func (cm *ConnectMap) Sync(pz *core.Puzzle, sm *SideMap) (int, error) {
	fresh, err := NewConnectMap(pz, sm)
	if err != nil {
		return 0, err
	}
	*cm = *fresh
	closed := cm.countClosed()
	if closed > 2 {
		return closed, invalidBoard("more than two fully enclosed regions")
	}
	return closed, nil
}

func (cm *ConnectMap) countClosed() int {
	n := 0
	for _, r := range cm.uf.Roots() {
		if len(cm.uf.value[r].UnknownEdges) == 0 {
			n++
		}
	}
	return n
}

// CountArea returns the number of distinct areas currently tracked.
func (cm *ConnectMap) CountArea() int { return len(cm.uf.Roots()) }

// Get returns the area containing cell id.
func (cm *ConnectMap) Get(id core.CellId) Area { return cm.uf.Get(int(id)) }

// Areas returns every distinct area's representative value.
func (cm *ConnectMap) Areas() []Area {
	roots := cm.uf.Roots()
	areas := make([]Area, len(roots))
	for i, r := range roots {
		areas[i] = cm.uf.value[r]
	}
	return areas
}

// Root returns the union-find representative key for cell id, for callers
// (the connectivity step) that need to build their own graph over areas.
func (cm *ConnectMap) Root(id core.CellId) int { return cm.uf.Find(int(id)) }

// SumOfHint is the puzzle-wide hint total.
func (cm *ConnectMap) SumOfHint() int { return cm.sumOfHint }

// Clone returns an independent deep copy.
func (cm *ConnectMap) Clone() *ConnectMap {
	return &ConnectMap{size: cm.size, uf: cm.uf.Clone(), sumOfHint: cm.sumOfHint}
}
