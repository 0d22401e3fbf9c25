// Package metrics defines and registers all custom Prometheus metrics for the
// mentorship API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentorship"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsBookedTotal counts sessions created in the requested state.
// Label:
//   - channel: "video", "audio", "chat" or "link"
var SessionsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_booked_total",
		Help:      "Total number of session requests created, by channel.",
	},
	[]string{"channel"},
)

// BookingConflictsTotal counts booking attempts rejected because the mentor was busy.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking attempts rejected with a conflict.",
	},
)

// SessionTransitionsTotal counts applied status transitions.
// Label:
//   - status: the new session status (e.g. "confirmed")
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session status transitions, by target status.",
	},
	[]string{"status"},
)

// SessionsRatedTotal counts ratings recorded on completed sessions.
var SessionsRatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_rated_total",
		Help:      "Total number of session ratings recorded.",
	},
)

// ── Rating metrics ────────────────────────────────────────────────────────────

// RatingRecomputeDuration measures one full recomputation of a mentor rating.
// Label:
//   - result: "ok" or "error"
var RatingRecomputeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Duration of a mentor rating recomputation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// RatingRetriesTotal counts retry outcomes in the recompute dispatcher.
// Label:
//   - outcome: "scheduled", "succeeded", "failed" or "dropped"
var RatingRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_retries_total",
		Help:      "Total number of rating recompute retries, by outcome.",
	},
	[]string{"outcome"},
)

// RecomputeQueueDepth tracks pending retries in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RecomputeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "recompute_queue_depth",
		Help:      "Current number of mentor ids pending in each recompute worker channel.",
	},
	[]string{"worker_id"},
)

// ── Presence metrics ──────────────────────────────────────────────────────────

// MentorHeartbeatsTotal counts presence heartbeats received from mentors.
var MentorHeartbeatsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mentor_heartbeats_total",
		Help:      "Total number of mentor presence heartbeats.",
	},
)
