// Package metrics holds the Prometheus collectors for ladder searches.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/pfrederiksen/wordladder/internal/ladder"
)

// Search outcome labels
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Registry holds all metrics for the application
type Registry struct {
	SearchesTotal   *prometheus.CounterVec
	SearchDuration  prometheus.Histogram
	LaddersFound    prometheus.Histogram
	LaddersExpanded prometheus.Histogram
	DictionaryWords prometheus.Gauge
	NeighborLookups prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.SearchesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_searches_total",
			Help: "Total number of ladder searches",
		},
		[]string{"status"},
	)

	r.SearchDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordladder_search_duration_seconds",
			Help:    "Ladder search duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
	)

	r.LaddersFound = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordladder_ladders_found",
			Help:    "Number of shortest ladders returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100},
		},
	)

	r.LaddersExpanded = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordladder_ladders_expanded",
			Help:    "Number of partial ladders expanded per search",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.DictionaryWords = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "wordladder_dictionary_words",
			Help: "Number of words in the dictionary used by the last search",
		},
	)

	r.NeighborLookups = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "wordladder_neighbor_lookups_total",
			Help: "Total number of neighbor listings served",
		},
	)

	return r
}

// RecordSearch records one search outcome. res may be nil when err is set.
func (r *Registry) RecordSearch(res *ladder.Result, err error, duration time.Duration) {
	r.SearchDuration.Observe(duration.Seconds())

	switch {
	case err != nil:
		r.SearchesTotal.WithLabelValues(StatusError).Inc()
		return
	case res.Found():
		r.SearchesTotal.WithLabelValues(StatusFound).Inc()
	default:
		r.SearchesTotal.WithLabelValues(StatusNotFound).Inc()
	}
	r.LaddersFound.Observe(float64(len(res.Ladders)))
	r.LaddersExpanded.Observe(float64(res.Stats.Expanded))
}

// SetDictionarySize records the size of the active dictionary
func (r *Registry) SetDictionarySize(n int) {
	r.DictionaryWords.Set(float64(n))
}

// WriteText writes every gathered metric family in the Prometheus text format
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
