// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"strconv"

	"split-wallet-engine/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "split_wallet"

// Metrics implements ports.Metrics and carries the HTTP request counters.
type Metrics struct {
	propagationFailures *prometheus.CounterVec
	consistencyErrors   *prometheus.CounterVec
	payments            *prometheus.CounterVec
	roulette            *prometheus.CounterVec
	chainRetries        *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		propagationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "index_propagation_failures_total",
			Help:      "Index store writes that failed, including the retry attempt.",
		}, []string{"operation"}),
		consistencyErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "consistency_errors_total",
			Help:      "Updates whose index propagation failed after retry and left a repair debt.",
		}, []string{"operation"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "processed_total",
			Help:      "Participant payments by outcome.",
		}, []string{"outcome"}),
		roulette: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roulette",
			Name:      "executions_total",
			Help:      "Degen roulette draws by execution path.",
		}, []string{"path"}),
		chainRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "retries_total",
			Help:      "Blockchain calls retried after a transient failure.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.propagationFailures,
		m.consistencyErrors,
		m.payments,
		m.roulette,
		m.chainRetries,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) IndexPropagationFailed(operation string) {
	m.propagationFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) ConsistencyError(operation string) {
	m.consistencyErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) PaymentProcessed(outcome string) {
	m.payments.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RouletteExecuted(path domain.ExecutionPath) {
	m.roulette.WithLabelValues(string(path)).Inc()
}

func (m *Metrics) ChainRetry(operation string) {
	m.chainRetries.WithLabelValues(operation).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
