// Package metrics is an optional instrumentation seam for package planner:
// a Recorder interface with a no-op default and a Prometheus-backed
// implementation that a host (cmd/planroute, or any other caller) can wire
// in. Nothing in package planner requires a non-nil Recorder; omitting one
// costs nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder observes planner activity. Implementations must be safe for
// concurrent use only if the host calls planner methods concurrently;
// package planner itself never does.
type Recorder interface {
	// ObserveSearch records one ComputeShortestPath invocation: the
	// planner name ("astar", "thetastar", "lpastar", "dstarlite"), whether
	// it found a path, how many vertices it expanded, and how long it took.
	ObserveSearch(planner string, found bool, expanded int, d time.Duration)
	// ObserveReplan records one MapChange call that changed at least one
	// cell (LPAStar.MapChange, and DStarLite.MapChange through it),
	// separately from the ComputeShortestPath searches ObserveSearch
	// records. UpdateRobotLoc records nothing.
	ObserveReplan(planner string, found bool, expanded int, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(string, bool, int, time.Duration) {}
func (noopRecorder) ObserveReplan(string, bool, int, time.Duration) {}

// Noop returns a Recorder that discards every observation. It is the
// default HSearch uses when constructed without an explicit Recorder.
func Noop() Recorder { return noopRecorder{} }

// Prometheus is a Recorder backed by prometheus/client_golang counter and
// histogram vectors, registered through the caller's own
// prometheus.Registerer rather than a hardcoded push-gateway address.
type Prometheus struct {
	searches  *prometheus.CounterVec
	replans   *prometheus.CounterVec
	expanded  *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
	expandedR *prometheus.HistogramVec
	durationR *prometheus.HistogramVec
}

// NewPrometheus registers planner_* metrics on reg and returns a Recorder
// that reports through them.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_searches_total",
			Help: "Total ComputeShortestPath invocations by planner and outcome.",
		}, []string{"planner", "found"}),
		replans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_replans_total",
			Help: "Total MapChange calls that changed occupancy, by planner and outcome.",
		}, []string{"planner", "found"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_search_expanded_nodes",
			Help:    "Vertices expanded per initial search.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"planner"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "planner_search_duration_seconds",
			Help: "Wall-clock duration of an initial search.",
		}, []string{"planner"}),
		expandedR: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_replan_expanded_nodes",
			Help:    "Vertices expanded per replan.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"planner"}),
		durationR: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "planner_replan_duration_seconds",
			Help: "Wall-clock duration of a replan.",
		}, []string{"planner"}),
	}
	reg.MustRegister(p.searches, p.replans, p.expanded, p.duration, p.expandedR, p.durationR)
	return p
}

func (p *Prometheus) ObserveSearch(planner string, found bool, expanded int, d time.Duration) {
	p.searches.WithLabelValues(planner, foundLabel(found)).Inc()
	p.expanded.WithLabelValues(planner).Observe(float64(expanded))
	p.duration.WithLabelValues(planner).Observe(d.Seconds())
}

func (p *Prometheus) ObserveReplan(planner string, found bool, expanded int, d time.Duration) {
	p.replans.WithLabelValues(planner, foundLabel(found)).Inc()
	p.expandedR.WithLabelValues(planner).Observe(float64(expanded))
	p.durationR.WithLabelValues(planner).Observe(d.Seconds())
}

func foundLabel(found bool) string {
	if found {
		return "true"
	}
	return "false"
}
