package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
)

// LPAStar is an incremental replanner. Every node of grid is materialized
// up front in the standby pool with g=rhs=BigNum; only the source vertex
// (rhs pinned to 0) starts on the open queue.
//
// Internally every vertex's key is anchored to one fixed "source" (whose
// rhs is pinned at 0) and measures h toward one "anchor" (the heuristic
// target). For plain LPA* these are start and goal respectively. D* Lite
// reuses this same machine with the roles swapped and the anchor free to
// move — see dstarlite.go, which keeps "source" and "anchor" as two fixed
// names regardless of which of start/goal/robot-location they currently
// stand in for.
type LPAStar struct {
	grid     *gridmap.Grid
	store    *vertexStore
	sourceID int
	anchorID int
	km       float64

	expanded []geom.Point
	path     []geom.Point
	ok       bool

	lastRunID    uuid.UUID
	lastDuration time.Duration

	plannerName string
	recorder    metrics.Recorder
}

// NewLPAStar constructs an LPA* planner over grid, searching from start
// (rhs pinned to 0) toward goal.
func NewLPAStar(grid *gridmap.Grid, start, goal int) *LPAStar {
	return newLPAStar(grid, "lpastar", start, goal)
}

func newLPAStar(grid *gridmap.Grid, name string, sourceID, anchorID int) *LPAStar {
	l := &LPAStar{
		grid:        grid,
		store:       newVertexStore(),
		sourceID:    sourceID,
		anchorID:    anchorID,
		plannerName: name,
		recorder:    metrics.Noop(),
	}
	l.initialize()
	return l
}

func (l *LPAStar) initialize() {
	nodes := l.grid.Nodes()
	for i := range nodes {
		n := newSearchNode(&nodes[i], nodes[i].ID)
		l.store.standby[n.searchID] = n
	}
	source := l.store.standby[l.sourceID]
	source.rhs = 0
	source.h = l.h(source.node.Point)
	source.key = l.calcKey(source)
	l.store.promote(source)
}

// SetRecorder installs a metrics.Recorder. Pass metrics.Noop() (the
// default) to disable instrumentation.
func (l *LPAStar) SetRecorder(r metrics.Recorder) {
	if r == nil {
		r = metrics.Noop()
	}
	l.recorder = r
}

func (l *LPAStar) anchorPoint() geom.Point {
	return l.grid.NodeByID(l.anchorID).Point
}

// h is the Euclidean distance from p to the current anchor.
func (l *LPAStar) h(p geom.Point) float64 {
	return p.Distance(l.anchorPoint())
}

// calcKey computes a vertex's sort key: (min(g,rhs)+h+km, min(g,rhs)).
func (l *LPAStar) calcKey(n *SearchNode) Key {
	m := min(n.g, n.rhs)
	return Key{m + n.h + l.km, m}
}

// relax tightens u's lookahead value through predecessor sp if doing so
// lowers it.
func (l *LPAStar) relax(sp, u *SearchNode) {
	c := sp.g + l.grid.EdgeCost(sp.node, u.node)
	if c < u.rhs {
		u.rhs = c
		u.parent = sp.node
	}
}

// updateVertex is the sole routine that reconciles one vertex's rhs, key,
// and open/standby residency.
func (l *LPAStar) updateVertex(id int) {
	u, ok := l.store.locate(id)
	if !ok {
		return
	}
	l.expanded = append(l.expanded, u.node.Point)

	if id != l.sourceID {
		u.rhs = BigNum
		for nb := range u.node.Neighbors {
			sp, ok := l.store.locate(nb)
			if !ok {
				continue
			}
			l.relax(sp, u)
		}
	}
	u.h = l.h(u.node.Point)
	u.key = l.calcKey(u)

	consistent := geom.EqualFloat(u.g, u.rhs)
	inOpen := l.store.open.contains(id)
	if consistent {
		if inOpen {
			l.store.demote(u)
		}
		return
	}
	if inOpen {
		l.store.open.fix(u)
	} else {
		l.store.promote(u)
	}
}

// computeShortestPath is the main replanning loop: keep popping vertices
// while the queue is non-empty and either the top key is still below the
// anchor's key or the anchor itself is locally inconsistent.
func (l *LPAStar) computeShortestPath() {
	for {
		anchor, _ := l.store.locate(l.anchorID)
		anchor.h = l.h(anchor.node.Point)
		anchorKey := l.calcKey(anchor)
		topKey := l.store.open.topKey()

		if l.store.open.isEmpty() || (!topKey.less(anchorKey) && geom.EqualFloat(anchor.rhs, anchor.g)) {
			return
		}

		u := l.store.open.pop()
		l.expanded = append(l.expanded, u.node.Point)
		u.state = Closed
		l.store.standby[u.searchID] = u

		kOld := u.key
		u.h = l.h(u.node.Point)
		u.key = l.calcKey(u)

		switch {
		case kOld.less(u.key):
			l.store.promote(u)
		case u.g > u.rhs:
			u.g = u.rhs
			for nb := range u.node.Neighbors {
				l.updateVertex(nb)
			}
		default:
			u.g = BigNum
			for nb := range u.node.Neighbors {
				l.updateVertex(nb)
			}
			l.updateVertex(u.searchID)
		}
	}
}

// ComputeShortestPath (re)plans from the current source to the current
// anchor and reports whether a path exists.
func (l *LPAStar) ComputeShortestPath() bool {
	started := time.Now()
	l.lastRunID = uuid.New()
	l.expanded = nil

	l.computeShortestPath()

	anchor, _ := l.store.locate(l.anchorID)
	l.ok = anchor.rhs < BigNum
	if l.ok {
		l.assemblePath()
	} else {
		l.path = nil
	}

	l.lastDuration = time.Since(started)
	l.recorder.ObserveSearch(l.plannerName, l.ok, len(l.expanded), l.lastDuration)
	return l.ok
}

// MapChange applies a batch of occupancy changes and repairs local
// consistency for every neighbor of each changed cell. Callers must
// follow with ComputeShortestPath to actually repair the path; MapChange
// only seeds the open queue.
func (l *LPAStar) MapChange(updates []gridmap.CellUpdate) bool {
	started := time.Now()
	changedFlags := l.grid.Update(updates)

	any := false
	for i, changed := range changedFlags {
		if !changed {
			continue
		}
		any = true
		u := updates[i]
		node := l.grid.NodeAt(u.X, u.Y)
		for nb := range node.Neighbors {
			l.updateVertex(nb)
		}
	}

	if any {
		l.recorder.ObserveReplan(l.plannerName, true, len(l.expanded), time.Since(started))
	}
	return any
}

// assemblePath walks the parent chain from the anchor back to the source
// as a read-only traversal of already-fixed parent pointers, never
// mutating state during extraction.
func (l *LPAStar) assemblePath() {
	var reversed []geom.Point
	cur, _ := l.store.locate(l.anchorID)
	for {
		reversed = append(reversed, cur.node.Point)
		if cur.parent == nil {
			break
		}
		next, ok := l.store.locate(cur.parent.ID)
		if !ok {
			break
		}
		cur = next
	}
	l.path = make([]geom.Point, len(reversed))
	for i, p := range reversed {
		l.path[len(reversed)-1-i] = p
	}
}

// GetPath returns the path from source to anchor, empty if the last
// search failed.
func (l *LPAStar) GetPath() []geom.Point {
	if !l.ok {
		return nil
	}
	return l.path
}

// GetExpandedNodes returns the diagnostic trace of the last search or
// replan.
func (l *LPAStar) GetExpandedNodes() []geom.Point {
	return l.expanded
}

// Diagnostics returns the run id, expanded trace, and duration of the
// last search.
func (l *LPAStar) Diagnostics() Diagnostics {
	return Diagnostics{RunID: l.lastRunID, Expanded: l.expanded, Duration: l.lastDuration}
}
