package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	shipmentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "shipments",
			Name:      "created_total",
			Help:      "Total number of created shipments",
		},
		[]string{"shipping_method"},
	)

	eventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "events",
			Name:      "publish_failed_total",
			Help:      "Total number of lifecycle events that could not be published",
		},
		[]string{"event"},
	)
)

var (
	packingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "packing",
			Name:      "requests_total",
			Help:      "Total number of packing instruction requests by result",
		},
		[]string{"result"},
	)

	packingGenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shipment_tracker",
			Subsystem: "packing",
			Name:      "generation_duration_seconds",
			Help:      "Histogram of packing instruction generation durations in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)
)

func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		shipmentsCreated,
		eventsFailed,

		packingRequests,
		packingGenerationDuration,
	)
}
