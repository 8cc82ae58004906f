// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsSynthesized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_synthesized_total",
			Help: "Total number of notifications synthesized per rule",
		},
		[]string{"rule"},
	)

	NotificationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_actions_total",
			Help: "Total number of lifecycle actions applied to the feed",
		},
		[]string{"action"},
	)

	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_store_mutations_total",
			Help: "Total number of record store mutations by kind",
		},
		[]string{"kind"},
	)

	StorePersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_store_persist_failures_total",
			Help: "Total number of failed blob persist attempts by key",
		},
		[]string{"key"},
	)

	FeedRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "notification_feed_refresh_duration_seconds",
			Help: "Duration of a full notification feed refresh in seconds",
		},
	)
)
