package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "questionbank",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Store operations by slice, operation and outcome",
	},
	[]string{"slice", "op", "outcome"},
)
