package planner

import (
	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
)

// ThetaStar is structurally identical to AStar except for its ComputeCost
// hook: it tries line-of-sight parent inheritance before falling back to
// the ordinary A* relaxation, yielding any-angle paths.
type ThetaStar struct {
	hs           *hSearch
	obstacles    []gridmap.Polygon
	bufferRadius float64
}

// NewThetaStar constructs a Theta* planner over grid. obstacles are the
// known collision polygons the line-of-sight check tests against;
// bufferRadius inflates each obstacle edge to approximate robot footprint.
func NewThetaStar(grid *gridmap.Grid, obstacles []gridmap.Polygon, bufferRadius float64) *ThetaStar {
	t := &ThetaStar{obstacles: obstacles, bufferRadius: bufferRadius}
	t.hs = newHSearch(grid, "thetastar", t.computeCost)
	return t
}

// SetRecorder installs a metrics.Recorder. Pass metrics.Noop() (the
// default) to disable instrumentation.
func (t *ThetaStar) SetRecorder(r metrics.Recorder) { t.hs.SetRecorder(r) }

// ComputeShortestPath searches from start to goal (grid node ids).
func (t *ThetaStar) ComputeShortestPath(start, goal int) bool {
	return t.hs.run(start, goal)
}

// GetPath returns the path from start to goal, empty if the last search
// failed.
func (t *ThetaStar) GetPath() []geom.Point { return t.hs.GetPath() }

// GetExpandedNodes returns the diagnostic trace of the last search.
func (t *ThetaStar) GetExpandedNodes() []geom.Point { return t.hs.GetExpandedNodes() }

// Diagnostics returns the run id, expanded trace, and duration of the last
// search.
func (t *ThetaStar) Diagnostics() Diagnostics { return t.hs.Diagnostics() }

// lineOfSight reports whether the straight segment a-b is unobstructed: no
// known obstacle polygon (inflated by bufferRadius) crosses it.
func (t *ThetaStar) lineOfSight(a, b geom.Point) bool {
	for _, poly := range t.obstacles {
		if poly.SegmentIntersects(a, b, t.bufferRadius) {
			return false
		}
	}
	return true
}

// computeCost prefers grandparent adoption through s.parent when the
// straight segment to sp has line of sight and beats sp's current key;
// otherwise it falls back to the ordinary A* relaxation through s.
func (t *ThetaStar) computeCost(hs *hSearch, s, sp *SearchNode) {
	if s.parent != nil {
		if grandparent, ok := hs.lookup(s.parent.ID); ok && t.lineOfSight(grandparent.node.Point, sp.node.Point) {
			fVal, gVal, hVal := hs.f(grandparent, sp)
			if fVal < sp.key.K1 {
				sp.g = gVal
				sp.h = hVal
				sp.key = Key{fVal, gVal}
				sp.parent = grandparent.node
				return
			}
		}
	}
	astarComputeCost(hs, s, sp)
}
