// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DialogTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_turns_total",
			Help: "Total number of dialog turns handled, by resulting action",
		},
		[]string{"action"},
	)

	SlotValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slot_validation_failures_total",
			Help: "Total number of slot rule violations, by slot name",
		},
		[]string{"slot"},
	)

	JobsDispatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobs_dispatched_total",
			Help: "Total number of fulfillment jobs enqueued",
		},
	)

	FulfillmentRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_runs_total",
			Help: "Total number of worker invocations, by outcome",
		},
		[]string{"outcome"},
	)

	FulfillmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "fulfillment_run_duration_seconds",
			Help: "Duration of one worker invocation in seconds",
		},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of recommendation emails sent",
		},
	)
)
