package orf

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit   = "hit"
	resultEmpty = "empty"
	resultError = "error"
)

// Metrics is safe to share between indexes. A nil *Metrics records nothing.
type Metrics struct {
	builds      prometheus.Counter
	buildNodes  prometheus.Histogram
	queries     *prometheus.CounterVec
	resultCount prometheus.Histogram
}

// NewMetrics registers the orf collectors with reg. Registering twice with
// the same registerer panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		builds: f.NewCounter(prometheus.CounterOpts{
			Name: "orf_index_builds_total",
			Help: "Total range indexes built",
		}),
		buildNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "orf_index_nodes",
			Help:    "Trie nodes per built range index, both tries combined",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "orf_find_total",
			Help: "Total find queries by result type",
		}, []string{"result"}),
		resultCount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "orf_find_results",
			Help:    "Substrings returned per find query",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000, 10000},
		}),
	}
}

func (m *Metrics) observeBuild(nodes int) {
	if m == nil {
		return
	}
	m.builds.Inc()
	m.buildNodes.Observe(float64(nodes))
}

func (m *Metrics) observeFind(results int, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.queries.WithLabelValues(resultError).Inc()
		return
	case results == 0:
		m.queries.WithLabelValues(resultEmpty).Inc()
	default:
		m.queries.WithLabelValues(resultHit).Inc()
	}
	m.resultCount.Observe(float64(results))
}
