package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/planner"
)

func TestAStarEmptyGrid(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	a := planner.NewAStar(g)

	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(2, 2).ID
	require.True(t, a.ComputeShortestPath(start, goal))

	path := a.GetPath()
	require.Len(t, path, 3)
	require.InDelta(t, path[0].X, g.NodeAt(0, 0).Point.X, 1e-9)
	require.InDelta(t, path[len(path)-1].X, g.NodeAt(2, 2).Point.X, 1e-9)

	cost := pathCost(path)
	require.InDelta(t, 2*math.Sqrt2, cost, 1e-6)
}

func TestAStarBlockedCenterDetours(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	g.Update([]gridmap.CellUpdate{{X: 1, Y: 1, Value: gridmap.Blocked}})
	a := planner.NewAStar(g)

	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(2, 2).ID
	require.True(t, a.ComputeShortestPath(start, goal))

	// With the direct diagonal through the center blocked, the shortest
	// surviving route is strictly longer than the unobstructed diagonal.
	cost := pathCost(a.GetPath())
	require.Greater(t, cost, 2*math.Sqrt2)
	for _, p := range a.GetPath() {
		require.False(t, p.Equal(g.NodeAt(1, 1).Point), "path must not cross the blocked center cell")
	}
}

func TestAStarStartEqualsGoal(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	a := planner.NewAStar(g)

	id := g.NodeAt(1, 1).ID
	require.True(t, a.ComputeShortestPath(id, id))
	require.Len(t, a.GetPath(), 1)
}

func TestAStarFullyBlockedIsUnreachable(t *testing.T) {
	g := gridmap.Build(3, 3, 1, gridmap.Conn8)
	var updates []gridmap.CellUpdate
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			updates = append(updates, gridmap.CellUpdate{X: x, Y: y, Value: gridmap.Blocked})
		}
	}
	g.Update(updates)

	a := planner.NewAStar(g)
	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(2, 2).ID
	require.False(t, a.ComputeShortestPath(start, goal))
	require.Empty(t, a.GetPath())
}

func pathCost(path []geom.Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += path[i-1].Distance(path[i])
	}
	return total
}
