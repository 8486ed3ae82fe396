package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/planner"
)

func TestLPAStarMatchesAStarOnOpenGrid(t *testing.T) {
	g := gridmap.Build(4, 4, 1, gridmap.Conn8)
	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(3, 3).ID

	a := planner.NewAStar(g)
	require.True(t, a.ComputeShortestPath(start, goal))
	aCost := pathCost(a.GetPath())

	lpa := planner.NewLPAStar(g, start, goal)
	require.True(t, lpa.ComputeShortestPath())
	require.InDelta(t, aCost, pathCost(lpa.GetPath()), 1e-6)
}

func TestLPAStarStartEqualsGoal(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	id := g.NodeAt(1, 1).ID

	lpa := planner.NewLPAStar(g, id, id)
	require.True(t, lpa.ComputeShortestPath())
	require.Len(t, lpa.GetPath(), 1)
}

func TestLPAStarMapChangeRoutesAroundWall(t *testing.T) {
	g := gridmap.Build(5, 5, 1, gridmap.Conn8)
	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(4, 4).ID

	lpa := planner.NewLPAStar(g, start, goal)
	require.True(t, lpa.ComputeShortestPath())
	openCost := pathCost(lpa.GetPath())

	var updates []gridmap.CellUpdate
	for x := 0; x < 5; x++ {
		if x == 2 {
			continue // the one gap in the wall
		}
		updates = append(updates, gridmap.CellUpdate{X: x, Y: 2, Value: gridmap.Blocked})
	}
	require.True(t, lpa.MapChange(updates))
	require.True(t, lpa.ComputeShortestPath())

	path := lpa.GetPath()
	gap := g.NodeAt(2, 2).Point
	found := false
	for _, p := range path {
		if p.Equal(gap) {
			found = true
		}
	}
	require.True(t, found, "path must funnel through the only gap in the wall")
	require.GreaterOrEqual(t, pathCost(path), openCost)
}

func TestLPAStarMapChangeIdempotent(t *testing.T) {
	g := gridmap.Build(4, 4, 1, gridmap.Conn8)
	lpa := planner.NewLPAStar(g, g.NodeAt(0, 0).ID, g.NodeAt(3, 3).ID)
	require.True(t, lpa.ComputeShortestPath())

	changed := lpa.MapChange([]gridmap.CellUpdate{{X: 1, Y: 1, Value: gridmap.Free}})
	require.False(t, changed, "a cell already at its target value reports no change")
}

func TestLPAStarReplanAfterUnblock(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	var block []gridmap.CellUpdate
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			block = append(block, gridmap.CellUpdate{X: x, Y: y, Value: gridmap.Blocked})
		}
	}
	g.Update(block)

	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(2, 2).ID
	lpa := planner.NewLPAStar(g, start, goal)
	require.False(t, lpa.ComputeShortestPath())

	changed := lpa.MapChange([]gridmap.CellUpdate{
		{X: 1, Y: 1, Value: gridmap.Free},
		{X: 2, Y: 2, Value: gridmap.Free},
	})
	require.True(t, changed)
	require.True(t, lpa.ComputeShortestPath())
	require.NotEmpty(t, lpa.GetPath())
}
