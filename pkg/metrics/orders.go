package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order build and export activity.
type OrderMetrics struct {
	builds    *prometheus.CounterVec
	exports   prometheus.Counter
	lineCount prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_builds_total",
		Help: "Order rebuilds grouped by payment condition.",
	}, []string{"payment_condition"})
	exports := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_exports_total",
		Help: "CSV exports served.",
	})
	lineCount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_line_count",
		Help:    "Number of lines per built order.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
	reg.MustRegister(builds, exports, lineCount)
	return &OrderMetrics{
		builds:    builds,
		exports:   exports,
		lineCount: lineCount,
	}
}

// ObserveBuild records one rebuild and its resulting line count.
func (m *OrderMetrics) ObserveBuild(condition string, lines int) {
	if m == nil || m.builds == nil {
		return
	}
	m.builds.WithLabelValues(normalizeLabel(condition)).Inc()
	m.lineCount.Observe(float64(lines))
}

// IncExport counts one served CSV export.
func (m *OrderMetrics) IncExport() {
	if m == nil || m.exports == nil {
		return
	}
	m.exports.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
