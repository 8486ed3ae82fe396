package planner

import (
	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
)

// DStarLite is a replanner for a moving robot: LPAStar with start and goal
// swapped, so the fixed destination pins rhs=0 and the robot's current
// cell is the anchor the heuristic and km track as it drives. "source"
// always means the fixed destination here, "anchor" always means the
// robot's current cell.
type DStarLite struct {
	lpa *LPAStar
}

// NewDStarLite constructs a D* Lite planner over grid, with the robot
// starting at start and driving toward the fixed destination goal.
func NewDStarLite(grid *gridmap.Grid, start, goal int) *DStarLite {
	return &DStarLite{lpa: newLPAStar(grid, "dstarlite", goal, start)}
}

// SetRecorder installs a metrics.Recorder.
func (d *DStarLite) SetRecorder(r metrics.Recorder) {
	d.lpa.SetRecorder(r)
}

// ComputeShortestPath (re)plans from the robot's current cell to the
// destination.
func (d *DStarLite) ComputeShortestPath() bool {
	return d.lpa.ComputeShortestPath()
}

// MapChange reports a batch of occupancy changes; follow with
// ComputeShortestPath to repair the path.
func (d *DStarLite) MapChange(updates []gridmap.CellUpdate) bool {
	return d.lpa.MapChange(updates)
}

// UpdateRobotLoc moves the robot to newCell, accumulating km by the
// heuristic distance between the old and new cell so keys already on the
// open queue remain comparable to freshly computed ones without rekeying
// the whole queue.
func (d *DStarLite) UpdateRobotLoc(newCell int) {
	oldAnchor := d.lpa.anchorPoint()
	d.lpa.anchorID = newCell
	newAnchor := d.lpa.anchorPoint()
	d.lpa.km += oldAnchor.Distance(newAnchor)
}

// GetPath returns the path from the robot's current cell to the
// destination, empty if the last search failed.
func (d *DStarLite) GetPath() []geom.Point {
	raw := d.lpa.GetPath()
	if raw == nil {
		return nil
	}
	out := make([]geom.Point, len(raw))
	for i, p := range raw {
		out[len(raw)-1-i] = p
	}
	return out
}

// GetExpandedNodes returns the diagnostic trace of the last search or
// replan.
func (d *DStarLite) GetExpandedNodes() []geom.Point {
	return d.lpa.GetExpandedNodes()
}

// KM returns the accumulated key-modifier drift term. It never decreases:
// each UpdateRobotLoc adds the distance between the old and new robot
// cell, whichever direction the robot moves.
func (d *DStarLite) KM() float64 {
	return d.lpa.km
}

// Diagnostics returns the run id, expanded trace, and duration of the
// last search.
func (d *DStarLite) Diagnostics() Diagnostics {
	return d.lpa.Diagnostics()
}
