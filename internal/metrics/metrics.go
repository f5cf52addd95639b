// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HistoryOperations counts bill history operations by op (persist, load,
	// clear) and result (ok, error).
	HistoryOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitbill",
		Subsystem: "history",
		Name:      "operations_total",
		Help:      "Bill history operations by operation and result.",
	}, []string{"op", "result"})

	// HistoryDuration observes how long history operations take, backend I/O included.
	HistoryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "splitbill",
		Subsystem: "history",
		Name:      "operation_duration_seconds",
		Help:      "Latency of bill history operations.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"op"})

	// SplitsCalculated counts recalculations by result.
	SplitsCalculated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitbill",
		Name:      "splits_calculated_total",
		Help:      "Split recalculations by result.",
	}, []string{"result"})
)
