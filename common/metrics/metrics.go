package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starterclub"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP responses by status class (4xx, 5xx)",
		},
		[]string{"method", "path", "class"},
	)

	// Module lifecycle metrics
	ModuleTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "module_transitions_total",
			Help:      "Module install status transitions",
		},
		[]string{"operation", "status"},
	)

	ChecklistRowsSeededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklist_rows_seeded_total",
			Help:      "Checklist status rows created by seeding",
		},
	)

	// Webhook metrics
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Inbound webhook events by source and outcome",
		},
		[]string{"source", "event_type", "outcome"},
	)

	// Invalidation metrics
	InvalidationsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalidations_published_total",
			Help:      "UI invalidation signals by result",
		},
		[]string{"result"},
	)
)

// Webhook outcomes.
const (
	OutcomeProcessed = "processed"
	OutcomeIgnored   = "ignored"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := statusLabel(status)
	HTTPRequestsTotal.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"status": code,
	}).Inc()
	HTTPRequestDuration.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"status": code,
	}).Observe(elapsed.Seconds())

	if status >= 400 {
		HTTPErrorsTotal.With(prometheus.Labels{
			"method": method,
			"path":   path,
			"class":  code[:1] + "xx",
		}).Inc()
	}
}

// RecordTransition increments the transition counter for a lifecycle operation
// that left the install row in status.
func RecordTransition(operation, status string) {
	ModuleTransitionsTotal.With(prometheus.Labels{
		"operation": operation,
		"status":    status,
	}).Inc()
}

func RecordSeeded(rows int64) {
	if rows > 0 {
		ChecklistRowsSeededTotal.Add(float64(rows))
	}
}

func RecordWebhook(source, eventType, outcome string) {
	WebhookEventsTotal.With(prometheus.Labels{
		"source":     source,
		"event_type": eventType,
		"outcome":    outcome,
	}).Inc()
}

func RecordInvalidation(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	InvalidationsPublishedTotal.With(prometheus.Labels{"result": result}).Inc()
}

func statusLabel(status int) string {
	if status < 100 || status > 999 {
		return "000"
	}
	return strconv.Itoa(status)
}
