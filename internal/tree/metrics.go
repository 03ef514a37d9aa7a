package tree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports tree size, height and mutation counts. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Nodes      prometheus.Gauge
	Height     prometheus.Gauge
	Mutations  *prometheus.CounterVec
	Rejections *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "nodes",
			Help:      "Number of nodes in the tree.",
		}),
		Height: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "height",
			Help:      "Height of the root node.",
		}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "mutations_total",
			Help:      "Successful structural mutations by operation.",
		}, []string{"op"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "rejections_total",
			Help:      "Rejected structural mutations by operation.",
		}, []string{"op"}),
	}
}

func (m *Metrics) observe(op string, size, height int) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op).Inc()
	m.set(size, height)
}

func (m *Metrics) rejected(op string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(op).Inc()
}

func (m *Metrics) set(size, height int) {
	if m == nil {
		return
	}
	m.Nodes.Set(float64(size))
	m.Height.Set(float64(height))
}
