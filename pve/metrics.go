package pve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pve_client",
			Name:      "requests_total",
			Help:      "API requests dispatched to the transport.",
		},
		[]string{"method"},
	)

	requestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pve_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed at the transport layer.",
		},
		[]string{"method"},
	)
)
