package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/planner"
)

func blockSquare(g *gridmap.Grid, x0, y0, x1, y1 int) {
	var updates []gridmap.CellUpdate
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			updates = append(updates, gridmap.CellUpdate{X: x, Y: y, Value: gridmap.Blocked})
		}
	}
	g.Update(updates)
}

func TestThetaStarDominatesAStarAroundObstacle(t *testing.T) {
	g := gridmap.Build(10, 10, 1, gridmap.Conn8)
	blockSquare(g, 3, 3, 6, 6)
	obstacle := gridmap.RectangleObstacle(g, 3, 3, 7, 7)

	start := g.NodeAt(0, 0).ID
	goal := g.NodeAt(9, 9).ID

	a := planner.NewAStar(g)
	require.True(t, a.ComputeShortestPath(start, goal))
	aCost := pathCost(a.GetPath())

	theta := planner.NewThetaStar(g, []gridmap.Polygon{obstacle}, 0.05)
	require.True(t, theta.ComputeShortestPath(start, goal))
	thetaPath := theta.GetPath()
	thetaCost := pathCost(thetaPath)

	require.LessOrEqual(t, len(thetaPath), 4, "any-angle smoothing should collapse the route to the obstacle's corners plus endpoints")
	require.LessOrEqual(t, thetaCost, aCost+1e-9, "Theta* must never be worse than the 8-connected A* path")
}

func TestThetaStarStartEqualsGoal(t *testing.T) {
	g := gridmap.Build(5, 5, 1, gridmap.Conn8)
	theta := planner.NewThetaStar(g, nil, 0)

	id := g.NodeAt(2, 2).ID
	require.True(t, theta.ComputeShortestPath(id, id))
	require.Len(t, theta.GetPath(), 1)
}
