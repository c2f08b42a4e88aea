package solver

import "github.com/gifnksm/slither-link-solver/internal/core"

// polarity names one of the two symmetric connectivity passes: treat In as
// the "must stay connected" side and Out as excluded, or vice versa.
type polarity struct {
	setSide core.Side
	exclude SideState
}

var polarities = [2]polarity{
	{setSide: core.In, exclude: SideFixedOut},
	{setSide: core.Out, exclude: SideFixedIn},
}

func sideStateOf(s core.Side) SideState {
	if s == core.In {
		return SideFixedIn
	}
	return SideFixedOut
}

func coreSideOf(s SideState) core.Side {
	if s == SideFixedIn {
		return core.In
	}
	return core.Out
}

// buildPolarityGraph contracts ConnectMap's areas into the graph one
// connectivity pass operates on: a node per area whose side is not
// Fixed(exclude), an edge per still-unknown boundary pair between two
// included areas.
func buildPolarityGraph(cm *ConnectMap, exclude SideState) ([]Area, [][]int) {
	var areas []Area
	index := map[int]int{}
	for _, a := range cm.Areas() {
		if a.Side == exclude {
			continue
		}
		index[cm.Root(a.Coord)] = len(areas)
		areas = append(areas, a)
	}
	adj := make([][]int, len(areas))
	for i, a := range areas {
		selfRoot := cm.Root(a.Coord)
		for _, e := range a.UnknownEdges {
			ra, rb := cm.Root(e.A), cm.Root(e.B)
			other := ra
			if ra == selfRoot {
				other = rb
			}
			j, ok := index[other]
			if !ok || j == i {
				continue
			}
			adj[i] = append(adj[i], j)
		}
	}
	return areas, adj
}

// components groups every node of the graph reachable without passing
// through skip (pass -1 to consider the whole graph) into connected
// components, via plain BFS.
func components(n int, adj [][]int, skip int) [][]int {
	visited := make([]bool, n)
	if skip >= 0 {
		visited[skip] = true
	}
	var comps [][]int
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		var comp []int
		queue := []int{s}
		visited[s] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range adj[cur] {
				if nb == skip || visited[nb] {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// articulationPoints runs the standard iterative DFS (iterative to avoid
// recursion-depth concerns on large grids) computing discovery order and
// low-link, maintaining one visited set across every DFS root so a
// disconnected graph is still handled correctly.
//
// Grounded on srither-solver/src/step/connect_analysis.rs.
func articulationPoints(n int, adj [][]int) []bool {
	disc := make([]int, n)
	low := make([]int, n)
	visited := make([]bool, n)
	isArt := make([]bool, n)
	timer := 0

	type frame struct {
		node       int
		parent     int
		childIdx   int
		childCount int
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		stack := []frame{{node: start, parent: -1}}
		visited[start] = true
		disc[start] = timer
		low[start] = timer
		timer++

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.childIdx < len(adj[top.node]) {
				next := adj[top.node][top.childIdx]
				top.childIdx++
				if next == top.parent {
					// Only skip a single edge back to the immediate parent;
					// a second parallel edge to the parent still counts as
					// a back edge.
					top.parent = -2
					continue
				}
				if !visited[next] {
					visited[next] = true
					disc[next] = timer
					low[next] = timer
					timer++
					top.childCount++
					stack = append(stack, frame{node: next, parent: top.node})
				} else if disc[next] < low[top.node] {
					low[top.node] = disc[next]
				}
			} else {
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					parentFrame := &stack[len(stack)-1]
					p := parentFrame.node
					if low[top.node] < low[p] {
						low[p] = low[top.node]
					}
					if parentFrame.parent == -1 {
						if parentFrame.childCount > 1 {
							isArt[p] = true
						}
					} else if low[top.node] >= disc[p] {
						isArt[p] = true
					}
				}
			}
		}
	}
	return isArt
}

// RunConnectivity is the connectivity-analysis step, run once per
// fixed-point iteration after cm has been synced against sm. For each of
// the two polarities it: (1) finds disconnected components where one side
// carries no hint at all and forces that whole component to the excluded
// side, and (2) finds articulation areas that, if set to the excluded
// side, would sever two areas that must both stay on setSide — and forces
// those to setSide instead. It reports whether it made any progress.
//
// Grounded on srither-solver/src/step/connect_analysis.rs.
func RunConnectivity(sm *SideMap, cm *ConnectMap) (bool, error) {
	changed := false
	for _, pol := range polarities {
		areas, adj := buildPolarityGraph(cm, pol.exclude)
		if len(areas) == 0 {
			continue
		}

		comps := components(len(areas), adj, -1)
		if len(comps) > 1 {
			total := 0
			for _, a := range areas {
				total += a.SumOfHint
			}
			for _, comp := range comps {
				sum := 0
				for _, idx := range comp {
					sum += areas[idx].SumOfHint
				}
				if sum == 0 && total-sum > 0 {
					for _, idx := range comp {
						if sm.SetSide(areas[idx].Coord, coreSideOf(pol.exclude)) {
							changed = true
						}
					}
				}
			}
		}

		// Open question: when setSide is In and the puzzle has no hints at
		// all, a fully-Out board is the unique answer but nothing forces
		// it; the rule is left lazy (discovered by propagation) rather than
		// asserted up front, matching the source's own ambiguity here.
		if pol.setSide == core.In && cm.SumOfHint() == 0 {
			continue
		}

		isArt := articulationPoints(len(areas), adj)
		setState := sideStateOf(pol.setSide)
		for v, isA := range isArt {
			if !isA || areas[v].Side == setState {
				continue
			}
			residual := components(len(areas), adj, v)
			compOf := make(map[int]int, len(areas))
			for ci, comp := range residual {
				for _, idx := range comp {
					compOf[idx] = ci
				}
			}
			mandatory := map[int]bool{}
			for _, nb := range adj[v] {
				ci, ok := compOf[nb]
				if !ok || mandatory[ci] {
					continue
				}
				for _, idx := range residual[ci] {
					if areas[idx].Side == setState {
						mandatory[ci] = true
						break
					}
				}
			}
			if len(mandatory) >= 2 {
				if sm.SetSide(areas[v].Coord, pol.setSide) {
					changed = true
				}
			}
		}
	}
	return changed, nil
}
