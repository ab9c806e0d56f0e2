// Package metrics exposes Prometheus instrumentation for the sweep:
// case counts, convergence failures, and per-case solver latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SweepMetrics bundles the collectors updated by the sweep driver.
// Collectors live in a private registry so repeated sweeps in one process
// (and tests) never trip duplicate-registration panics.
type SweepMetrics struct {
	registry *prometheus.Registry

	casesTotal     prometheus.Counter
	casesFailed    prometheus.Counter
	solverDuration prometheus.Histogram
}

// NewSweepMetrics creates and registers the sweep collectors alongside the
// standard Go runtime collectors.
func NewSweepMetrics() *SweepMetrics {
	registry := prometheus.NewRegistry()

	m := &SweepMetrics{
		registry: registry,
		casesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foilbench_cases_total",
			Help: "Solver cases attempted.",
		}),
		casesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foilbench_convergence_failures_total",
			Help: "Solver cases that did not converge.",
		}),
		solverDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "foilbench_solver_duration_seconds",
			Help:    "Wall-clock duration of individual solver invocations.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	registry.MustRegister(
		m.casesTotal,
		m.casesFailed,
		m.solverDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCase records one completed solver invocation.
func (m *SweepMetrics) ObserveCase(seconds float64, converged bool) {
	m.casesTotal.Inc()
	if !converged {
		m.casesFailed.Inc()
	}
	m.solverDuration.Observe(seconds)
}

// Handler returns the HTTP handler serving this registry in the Prometheus
// exposition format.
func (m *SweepMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
