package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fallbackServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_client",
			Name:      "fallback_served_total",
			Help:      "Reads answered from the fallback dataset.",
		},
		[]string{"resource"},
	)

	seedJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_client",
			Name:      "seed_jobs_total",
			Help:      "Seed records processed, by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)
)
