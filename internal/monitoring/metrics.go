// Package monitoring exposes Prometheus metrics for the override engine.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is safe
// everywhere; recording methods are no-ops on it.
type Metrics struct {
	OverridesApplied prometheus.Counter
	SelectorMisses   prometheus.Counter
	Restores         prometheus.Counter
	Recoveries       prometheus.Counter
	SurfacesActive   prometheus.Gauge
}

// NewMetrics creates a metrics collector registered against reg. A nil
// registerer gets a private registry, which keeps test instances isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		OverridesApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "engine_overrides_applied_total",
			Help: "Total number of element overrides applied to a surface",
		}),
		SelectorMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "engine_selector_misses_total",
			Help: "Total number of overrides skipped because their selector matched nothing",
		}),
		Restores: factory.NewCounter(prometheus.CounterOpts{
			Name: "engine_restores_total",
			Help: "Total number of restore-to-version operations",
		}),
		Recoveries: factory.NewCounter(prometheus.CounterOpts{
			Name: "engine_recoveries_total",
			Help: "Total number of explicit sync recoveries",
		}),
		SurfacesActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "engine_surfaces_active",
			Help: "Number of surfaces currently tracked by the sync engine",
		}),
	}
}

// RecordOverride counts one applied override.
func (m *Metrics) RecordOverride() {
	if m != nil {
		m.OverridesApplied.Inc()
	}
}

// RecordSelectorMiss counts one skipped override.
func (m *Metrics) RecordSelectorMiss() {
	if m != nil {
		m.SelectorMisses.Inc()
	}
}

// RecordRestore counts one restore-to-version call.
func (m *Metrics) RecordRestore() {
	if m != nil {
		m.Restores.Inc()
	}
}

// RecordRecovery counts one recovery call.
func (m *Metrics) RecordRecovery() {
	if m != nil {
		m.Recoveries.Inc()
	}
}

// SetSurfaces records the current surface count.
func (m *Metrics) SetSurfaces(n int) {
	if m != nil {
		m.SurfacesActive.Set(float64(n))
	}
}
