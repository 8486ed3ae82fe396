package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
)

// Diagnostics is returned alongside a search's success/failure: the
// expanded-node trace, tagged with a run id so a host can correlate a
// given replan's metrics/log lines, and how long the search took.
type Diagnostics struct {
	RunID    uuid.UUID
	Expanded []geom.Point
	Duration time.Duration
}

// costFn is the one overridable hook the shared search loop calls when
// relaxing an edge from s to sp, a small strategy function in place of
// inheritance. A* and Theta* supply distinct costFns; LPA* supplies its
// own variant directly (see lpastar.go).
type costFn func(hs *hSearch, s, sp *SearchNode)

// hSearch is the shared one-shot search scaffolding: heuristic, path
// extraction, expanded-node tracking, the one ComputeCost hook. A*
// and Theta* each hold one; LPA*/D* Lite have their own vertex-store-driven
// loop and reuse only h/g/f/Key, not this struct, since their residency
// model (open+standby, no closed list) is structurally different.
type hSearch struct {
	grid      *gridmap.Grid
	goalPoint geom.Point

	open   *openQueue
	closed map[int]*SearchNode

	expanded []geom.Point
	path     []geom.Point
	ok       bool

	lastRunID    uuid.UUID
	lastDuration time.Duration

	computeCost costFn

	plannerName string
	recorder    metrics.Recorder
}

func newHSearch(grid *gridmap.Grid, name string, cc costFn) *hSearch {
	return &hSearch{
		grid:        grid,
		open:        newOpenQueue(),
		closed:      make(map[int]*SearchNode),
		computeCost: cc,
		plannerName: name,
		recorder:    metrics.Noop(),
	}
}

// SetRecorder installs a metrics.Recorder. Pass metrics.Noop() (the
// default) to disable instrumentation.
func (hs *hSearch) SetRecorder(r metrics.Recorder) {
	if r == nil {
		r = metrics.Noop()
	}
	hs.recorder = r
}

// h is the admissible, consistent Euclidean heuristic to the current goal.
func (hs *hSearch) h(p geom.Point) float64 {
	return p.Distance(hs.goalPoint)
}

// g computes the cost-from-start of reaching sp via s.
func (hs *hSearch) g(s, sp *SearchNode) float64 {
	return s.g + s.node.Point.Distance(sp.node.Point)
}

// f returns (g+h, g, h) for the relaxation of sp via s.
func (hs *hSearch) f(s, sp *SearchNode) (fVal, gVal, hVal float64) {
	gVal = hs.g(s, sp)
	hVal = hs.h(sp.node.Point)
	return gVal + hVal, gVal, hVal
}

// run executes the shared A*/Theta* main loop: pop the min-key vertex,
// stop at goal, else expand neighbors via computeCost.
func (hs *hSearch) run(startID, goalID int) bool {
	started := time.Now()
	hs.lastRunID = uuid.New()

	nodes := hs.grid.Nodes()
	hs.goalPoint = nodes[goalID].Point
	hs.expanded = nil
	hs.path = nil
	hs.ok = false

	start := newSearchNode(&nodes[startID], startID)
	start.g = 0
	start.h = hs.h(start.node.Point)
	start.key = Key{start.g + start.h, start.g}
	start.state = Open
	hs.open.push(start)

	for !hs.open.isEmpty() {
		u := hs.open.pop()
		hs.expanded = append(hs.expanded, u.node.Point)

		if u.node.ID == goalID {
			hs.assemblePath(u)
			hs.ok = true
			break
		}

		u.state = Closed
		hs.closed[u.searchID] = u

		for nid := range hs.grid.PassableNeighbors(u.node.ID) {
			if _, done := hs.closed[nid]; done {
				continue
			}
			var sp *SearchNode
			wasNew := false
			if hs.open.contains(nid) {
				sp = hs.open.get(nid)
			} else {
				sp = newSearchNode(&nodes[nid], nid)
				wasNew = true
			}

			hs.computeCost(hs, u, sp)

			if wasNew {
				sp.state = Open
				hs.open.push(sp)
			} else {
				hs.open.fix(sp)
			}
		}
	}

	hs.lastDuration = time.Since(started)
	hs.recorder.ObserveSearch(hs.plannerName, hs.ok, len(hs.expanded), hs.lastDuration)
	return hs.ok
}

// lookup finds the SearchNode for a graph node id among the vertices this
// search has already touched, checking closed first then open, mirroring
// assemblePath's parent-resolution order.
func (hs *hSearch) lookup(id int) (*SearchNode, bool) {
	if n, ok := hs.closed[id]; ok {
		return n, true
	}
	if hs.open.contains(id) {
		return hs.open.get(id), true
	}
	return nil, false
}

// assemblePath walks parent back-links from goal to start, looking the
// parent up in the closed list first then the open list. The result is
// stored goal-first and reversed into start-first order for GetPath's
// caller-facing contract.
func (hs *hSearch) assemblePath(goalNode *SearchNode) {
	var reversed []geom.Point
	cur := goalNode
	for {
		reversed = append(reversed, cur.node.Point)
		if cur.parent == nil {
			break
		}
		parentID := cur.parent.ID
		next, ok := hs.closed[parentID]
		if !ok {
			next = hs.open.get(parentID)
		}
		cur = next
	}
	hs.path = make([]geom.Point, len(reversed))
	for i, p := range reversed {
		hs.path[len(reversed)-1-i] = p
	}
}

// GetPath returns the path from start to goal, empty if the last search
// failed.
func (hs *hSearch) GetPath() []geom.Point {
	if !hs.ok {
		return nil
	}
	return hs.path
}

// GetExpandedNodes returns the diagnostic trace of popped vertices from
// the last search.
func (hs *hSearch) GetExpandedNodes() []geom.Point {
	return hs.expanded
}

// Diagnostics returns the run id, expanded-node trace, and duration of the
// last search.
func (hs *hSearch) Diagnostics() Diagnostics {
	return Diagnostics{
		RunID:    hs.lastRunID,
		Expanded: hs.expanded,
		Duration: hs.lastDuration,
	}
}
