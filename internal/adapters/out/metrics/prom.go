// Package metrics exposes shipment lifecycle counters to Prometheus.
package metrics

import (
	"errors"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"

	"github.com/prometheus/client_golang/prometheus"
)

// PromStatusMetrics implements ports.StatusMetrics.
type PromStatusMetrics struct {
	transitions *prometheus.CounterVec
	created     *prometheus.CounterVec
}

// NewPromStatusMetrics registers the counters on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are reused.
func NewPromStatusMetrics(reg prometheus.Registerer) (*PromStatusMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_status_transitions_total",
		Help: "Total number of accepted shipment status transitions",
	}, []string{"status"})
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_shipments_created_total",
		Help: "Total number of shipments registered at intake",
	}, []string{"mode"})

	var err error
	if transitions, err = register(reg, transitions); err != nil {
		return nil, err
	}
	if created, err = register(reg, created); err != nil {
		return nil, err
	}
	return &PromStatusMetrics{transitions: transitions, created: created}, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *PromStatusMetrics) RecordTransition(status shipment.Status) {
	m.transitions.WithLabelValues(status.String()).Inc()
}

func (m *PromStatusMetrics) RecordShipmentCreated(mode schedule.Mode) {
	m.created.WithLabelValues(mode.String()).Inc()
}
