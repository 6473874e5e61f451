package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "questionbank",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Requests sent to the catalog API",
		},
		[]string{"method", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "questionbank",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Catalog API round-trip duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
