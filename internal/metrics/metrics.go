// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inventory"

// Login outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidCredential = "invalid_credentials"
	OutcomeRoleMismatch      = "role_mismatch"
	OutcomeError             = "error"
)

// Metrics groups the application collectors on a private registry so tests
// can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	AuthAttempts     *prometheus.CounterVec
	OrderTransitions *prometheus.CounterVec
	OverdueOrders    *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Login attempts by login page role and outcome.",
		}, []string{"role", "outcome"}),
		OrderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_updates_total",
			Help:      "Accepted order updates by kind (override, claim, progress) and resulting status.",
		}, []string{"kind", "status"}),
		OverdueOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "overdue_orders",
			Help:      "Orders dated before today that are not completed, per business.",
		}, []string{"business_id"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AuthAttempts,
		m.OrderTransitions,
		m.OverdueOrders,
	)
	return m
}

// LoginAttempt records one login. role is the login page role, or "any".
func (m *Metrics) LoginAttempt(role, outcome string) {
	m.AuthAttempts.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) OrderUpdated(kind, status string) {
	m.OrderTransitions.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) SetOverdue(businessID string, count int64) {
	m.OverdueOrders.WithLabelValues(businessID).Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
