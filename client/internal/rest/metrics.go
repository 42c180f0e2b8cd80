package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "travel_client",
		Name:      "requests_total",
		Help:      "Backend requests by method and outcome.",
	},
	[]string{"method", "outcome"},
)
