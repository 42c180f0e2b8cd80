package workqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queueDepth is only written from the worker goroutine of its shard.
var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_client",
			Subsystem: "workqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted for execution.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_client",
			Subsystem: "workqueue",
			Name:      "queue_full_total",
			Help:      "Enqueue attempts that timed out on a full queue.",
		},
		[]string{"shard"},
	)

	jobFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_client",
			Subsystem: "workqueue",
			Name:      "job_failures_total",
			Help:      "Jobs that failed after their last attempt.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travel_client",
			Subsystem: "workqueue",
			Name:      "run_duration_seconds",
			Help:      "Job attempt latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "travel_client",
			Subsystem: "workqueue",
			Name:      "queue_depth",
			Help:      "Current depth of each shard queue.",
		},
		[]string{"shard"},
	)
)

func labelFor(i int) string { return strconv.Itoa(i) }
