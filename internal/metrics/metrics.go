// Package metrics exposes Prometheus instrumentation for the sandbox
// executor. A nil *Collector is valid and records nothing, so callers can
// leave metrics unconfigured without guarding every observation site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voxact"

// Collector holds the executor's metric series.
type Collector struct {
	executions *prometheus.CounterVec
	blocked    prometheus.Counter
	duration   prometheus.Histogram
}

// New creates a Collector and registers its series with reg. A nil reg
// registers with the default registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "executions_total",
			Help:      "Scripts dispatched to a backend, by backend and outcome kind.",
		}, []string{"backend", "kind"}),
		blocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_total",
			Help:      "Scripts rejected by the safety gate before dispatch.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "execution_duration_seconds",
			Help:      "Wall clock time of dispatched scripts.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}),
	}
	reg.MustRegister(c.executions, c.blocked, c.duration)
	return c
}

// ObserveExecution records one dispatched script.
func (c *Collector) ObserveExecution(backend, kind string, d time.Duration) {
	if c == nil {
		return
	}
	c.executions.WithLabelValues(backend, kind).Inc()
	c.duration.Observe(d.Seconds())
}

// ObserveBlocked records one script rejected by the safety gate.
func (c *Collector) ObserveBlocked() {
	if c == nil {
		return
	}
	c.blocked.Inc()
}
