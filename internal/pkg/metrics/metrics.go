// Package metrics holds the Prometheus instruments of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Notification outcomes.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Login outcomes.
const (
	LoginSucceeded = "succeeded"
	LoginDenied    = "denied"
	LoginRejected  = "rejected"
	LoginUnknown   = "unknown_identity"
	LoginFailed    = "error"
)

// Metrics tracks notification delivery, logins and the size of the review queue.
type Metrics struct {
	NotificationsTotal *prometheus.CounterVec
	LoginsTotal        *prometheus.CounterVec
	PendingIdentities  prometheus.Gauge
	PendingListings    prometheus.Gauge
	JobRunsTotal       *prometheus.CounterVec
}

// New registers every instrument with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loadboard_notifications_total",
			Help: "Notifications handed to the transport, by kind and outcome",
		}, []string{"kind", "outcome"}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loadboard_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		PendingIdentities: factory.NewGauge(prometheus.GaugeOpts{
			Name: "loadboard_pending_identities",
			Help: "Active identities waiting for review",
		}),
		PendingListings: factory.NewGauge(prometheus.GaugeOpts{
			Name: "loadboard_pending_listings",
			Help: "Listings waiting for review",
		}),
		JobRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loadboard_job_runs_total",
			Help: "Scheduled job runs by job and outcome",
		}, []string{"job", "outcome"}),
	}
}

// IncrementNotification records one notification delivery attempt.
func (m *Metrics) IncrementNotification(kind, outcome string) {
	m.NotificationsTotal.WithLabelValues(kind, outcome).Inc()
}

// IncrementLogin records one login attempt.
func (m *Metrics) IncrementLogin(outcome string) {
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// SetReviewQueue publishes the current review queue size.
func (m *Metrics) SetReviewQueue(pendingIdentities, pendingListings int) {
	m.PendingIdentities.Set(float64(pendingIdentities))
	m.PendingListings.Set(float64(pendingListings))
}

// IncrementJobRun records one scheduled job run.
func (m *Metrics) IncrementJobRun(job string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.JobRunsTotal.WithLabelValues(job, outcome).Inc()
}
