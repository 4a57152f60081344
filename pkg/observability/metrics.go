package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
	"github.com/aretw0/sigcast/pkg/signal"
)

// Metrics holds the cast layer collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	types      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sigcast_cast_operations_total",
				Help: "Textual signal operations by type key, operation and result",
			},
			[]string{"type", "op", "result"},
		),
		types: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sigcast_registered_types",
			Help: "Number of type keys with a live cast entry",
		}),
	}
	for _, c := range []prometheus.Collector{m.operations, m.types} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveCast implements signal.Observer. The result label is "ok" or the
// error kind.
func (m *Metrics) ObserveCast(op signal.Op, key domain.TypeKey, err error) {
	result := "ok"
	if err != nil {
		result = domain.KindOf(err).String()
	}
	m.operations.WithLabelValues(string(key), string(op), result).Inc()
}

// SyncRegistry sets the registered-types gauge from r.
func (m *Metrics) SyncRegistry(r *registry.Registry) {
	m.types.Set(float64(r.Len()))
}
