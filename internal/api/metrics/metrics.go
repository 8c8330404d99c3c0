// Package metrics defines the Prometheus metrics of the WAY service. Every
// metric is registered on the default registry through promauto, so importing
// the package is enough. HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "way"

// ── Ledger metrics ────────────────────────────────────────────────────────────

// SubscriptionsTotal counts subscribe attempts.
// Label:
//   - result: "ok", "insufficient_funds", "already_subscribed", "replayed" or "error"
var SubscriptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscriptions_total",
		Help:      "Total number of channel subscribe attempts, by result.",
	},
	[]string{"result"},
)

// RechargesTotal counts successful wallet recharges.
var RechargesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_recharges_total",
		Help:      "Total number of successful wallet recharges.",
	},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantRequestsTotal counts assistant questions.
// Label:
//   - outcome: "answered" or "apology"
var AssistantRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_requests_total",
		Help:      "Total number of assistant questions, by outcome.",
	},
	[]string{"outcome"},
)

// AssistantDuration measures the gateway round trip.
var AssistantDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assistant_duration_seconds",
		Help:      "Duration of assistant gateway calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
	},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// PersistQueueDepth is 1 while a state is waiting for the background writer.
var PersistQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "persist_queue_depth",
		Help:      "Number of states pending in the background persister.",
	},
)

// PersistCoalescedTotal counts states replaced by a newer one before being written.
var PersistCoalescedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persist_coalesced_total",
		Help:      "Total number of pending states superseded before being written.",
	},
)

// PersistDuration measures one full Save of the state.
var PersistDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "persist_duration_seconds",
		Help:      "Duration of writing the full state to storage.",
		Buckets:   prometheus.DefBuckets,
	},
)

// StorageErrorsTotal counts failed storage operations.
// Label:
//   - op: "load", "save" or "session"
var StorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of failed storage operations, by operation.",
	},
	[]string{"op"},
)
