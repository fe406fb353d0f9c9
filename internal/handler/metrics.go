package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	trackingProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "updates_processed_total",
			Help:      "Total number of successfully applied tracking updates",
		},
		[]string{"status"},
	)

	trackingFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "updates_failed_total",
			Help:      "Total number of failed tracking update attempts",
		},
	)

	trackingDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "updates_dlq_total",
			Help:      "Total number of tracking updates written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	trackingProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "update_processing_duration_seconds",
			Help:      "Histogram of tracking update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	trackingInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shipment_tracker",
			Subsystem: "tracking_consumer",
			Name:      "updates_in_progress",
			Help:      "Number of tracking updates currently being processed",
		},
	)
)

func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		trackingProcessed,
		trackingFailed,
		trackingDLQ,
		commitErrors,
		trackingProcessingDuration,
		trackingInProgress,
	)
}
