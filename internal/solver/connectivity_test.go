package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticulationPointsOnPath(t *testing.T) {
	// 0 - 1 - 2: removing 1 disconnects 0 from 2.
	adj := [][]int{{1}, {0, 2}, {1}}
	isArt := articulationPoints(3, adj)
	assert.Equal(t, []bool{false, true, false}, isArt)
}

func TestArticulationPointsOnCycle(t *testing.T) {
	// A triangle has no articulation point.
	adj := [][]int{{1, 2}, {0, 2}, {0, 1}}
	isArt := articulationPoints(3, adj)
	assert.Equal(t, []bool{false, false, false}, isArt)
}

func TestArticulationPointsAcrossDisconnectedRoots(t *testing.T) {
	// Two separate paths: 0-1-2 and 3-4-5, each with its own articulation
	// point, verifying one visited set spanning multiple DFS roots works.
	adj := [][]int{
		{1}, {0, 2}, {1},
		{4}, {3, 5}, {4},
	}
	isArt := articulationPoints(6, adj)
	assert.Equal(t, []bool{false, true, false, false, true, false}, isArt)
}

func TestComponentsFindsDisjointGroups(t *testing.T) {
	adj := [][]int{{1}, {0}, {3}, {2}}
	comps := components(4, adj, -1)
	assert.Len(t, comps, 2)
}

func TestComponentsSkipNodeSplitsGraph(t *testing.T) {
	// 0 - 1 - 2, skipping 1 leaves 0 and 2 in separate components.
	adj := [][]int{{1}, {0, 2}, {1}}
	comps := components(3, adj, 1)
	assert.Len(t, comps, 2)
}
