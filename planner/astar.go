package planner

import (
	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
)

// AStar is a one-shot forward search: start's g=0, relax neighbors via
// astarComputeCost, expand the min-key vertex until the goal is popped or
// the queue empties.
type AStar struct {
	hs *hSearch
}

// NewAStar constructs an A* planner over grid. grid is borrowed, never
// mutated: A* expands only the currently free neighbors of each popped
// vertex (gridmap.Grid.PassableNeighbors), so a blocked cell is never
// stepped into even though it still exists in the graph topology.
func NewAStar(grid *gridmap.Grid) *AStar {
	return &AStar{hs: newHSearch(grid, "astar", astarComputeCost)}
}

// SetRecorder installs a metrics.Recorder. Pass metrics.Noop() (the
// default) to disable instrumentation.
func (a *AStar) SetRecorder(r metrics.Recorder) { a.hs.SetRecorder(r) }

// ComputeShortestPath searches from start to goal (grid node ids) and
// reports whether a path was found.
func (a *AStar) ComputeShortestPath(start, goal int) bool {
	return a.hs.run(start, goal)
}

// GetPath returns the path from start to goal, empty if the last search
// failed.
func (a *AStar) GetPath() []geom.Point { return a.hs.GetPath() }

// GetExpandedNodes returns the diagnostic trace of the last search.
func (a *AStar) GetExpandedNodes() []geom.Point { return a.hs.GetExpandedNodes() }

// Diagnostics returns the run id, expanded trace, and duration of the last
// search.
func (a *AStar) Diagnostics() Diagnostics { return a.hs.Diagnostics() }

// astarComputeCost relaxes sp via s if the candidate f is strictly better
// than sp's currently cached key.
func astarComputeCost(hs *hSearch, s, sp *SearchNode) {
	fVal, gVal, hVal := hs.f(s, sp)
	if fVal < sp.key.K1 {
		sp.g = gVal
		sp.h = hVal
		sp.key = Key{fVal, gVal}
		sp.parent = s.node
	}
}
