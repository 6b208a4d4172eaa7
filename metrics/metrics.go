// Package metrics exposes Prometheus collectors for graph construction and
// walk generation. Recorder satisfies both core.Recorder and walk.Recorder.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds all lyricwalk collectors, registered on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	VerticesTotal *prometheus.CounterVec
	EdgesTotal    *prometheus.CounterVec
	WalksTotal    *prometheus.CounterVec
	WalkLength    prometheus.Histogram
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// NewRecorder creates a Recorder on a fresh registry.
func NewRecorder() *Recorder {
	return NewRecorderWith(prometheus.NewRegistry())
}

// NewRecorderWith registers the collectors on reg.
func NewRecorderWith(reg *prometheus.Registry) *Recorder {
	r := &Recorder{registry: reg}
	f := promauto.With(reg)

	r.VerticesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lyricwalk_vertices_registered_total",
			Help: "Vertex registrations by outcome",
		},
		[]string{"result"},
	)
	r.EdgesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lyricwalk_edges_total",
			Help: "Edge creation attempts by outcome",
		},
		[]string{"result"},
	)
	r.WalksTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lyricwalk_walks_total",
			Help: "Finished walks by stop reason",
		},
		[]string{"stop"},
	)
	r.WalkLength = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "lyricwalk_walk_length_words",
		Help:    "Number of words emitted per walk",
		Buckets: []float64{0, 1, 2, 4, 6, 8, 12, 16, 32},
	})
	r.GraphVertices = f.NewGauge(prometheus.GaugeOpts{
		Name: "lyricwalk_graph_vertices",
		Help: "Distinct vertices in the most recently built graph",
	})
	r.GraphEdges = f.NewGauge(prometheus.GaugeOpts{
		Name: "lyricwalk_graph_edges",
		Help: "Directed edges in the most recently built graph",
	})

	return r
}

// ObserveVertex records a registration; added is false for duplicates.
func (r *Recorder) ObserveVertex(added bool) {
	if added {
		r.VerticesTotal.WithLabelValues("added").Inc()
		return
	}
	r.VerticesTotal.WithLabelValues("duplicate").Inc()
}

// ObserveEdge records an edge attempt; created is false for unknown endpoints.
func (r *Recorder) ObserveEdge(created bool) {
	if created {
		r.EdgesTotal.WithLabelValues("created").Inc()
		return
	}
	r.EdgesTotal.WithLabelValues("unknown_endpoint").Inc()
}

// ObserveWalk records a finished walk.
func (r *Recorder) ObserveWalk(stop string, words int) {
	r.WalksTotal.WithLabelValues(stop).Inc()
	r.WalkLength.Observe(float64(words))
}

// SetGraphShape publishes the size of the current graph.
func (r *Recorder) SetGraphShape(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests and custom exporters.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
