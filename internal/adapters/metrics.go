package adapters

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"frenetic/internal/ports"
)

// PrometheusMetricsAdapter exports materialization events as Prometheus
// counters.
type PrometheusMetricsAdapter struct {
	SchemaFetches     *prometheus.CounterVec
	ResourcesBuilt    *prometheus.CounterVec
	EmbeddedFallbacks *prometheus.CounterVec
}

// NewPrometheusMetricsAdapter registers the counters with reg.  A nil reg
// uses the default registerer.
func NewPrometheusMetricsAdapter(reg prometheus.Registerer) *PrometheusMetricsAdapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusMetricsAdapter{
		SchemaFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frenetic",
				Name:      "schema_fetches_total",
				Help:      "Schema document fetches by outcome",
			},
			[]string{"success"},
		),
		ResourcesBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frenetic",
				Name:      "resources_built_total",
				Help:      "Resources materialized by namespace and mode",
			},
			[]string{"namespace", "mock"},
		),
		EmbeddedFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frenetic",
				Name:      "embedded_fallbacks_total",
				Help:      "Embedded relations built as generic structures",
			},
			[]string{"relation"},
		),
	}
}

func (m *PrometheusMetricsAdapter) SchemaFetched(success bool) {
	m.SchemaFetches.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsAdapter) ResourceBuilt(namespace string, mock bool) {
	m.ResourcesBuilt.WithLabelValues(namespace, strconv.FormatBool(mock)).Inc()
}

func (m *PrometheusMetricsAdapter) EmbeddedFallback(relation string) {
	m.EmbeddedFallbacks.WithLabelValues(relation).Inc()
}

var _ ports.MetricsPort = (*PrometheusMetricsAdapter)(nil)
