package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_publisher",
			Name:      "events_published_total",
			Help:      "Total number of verified donation events published",
		},
	)

	publishErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_publisher",
			Name:      "publish_errors_total",
			Help:      "Total number of failed publish attempts",
		},
	)

	donationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_consumer",
			Name:      "donations_processed_total",
			Help:      "Total number of successfully recorded donations",
		},
	)

	donationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_consumer",
			Name:      "donations_failed_total",
			Help:      "Total number of failed donation recording attempts",
		},
	)

	donationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_consumer",
			Name:      "donations_dlq_total",
			Help:      "Total number of donation events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	donationProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "donation_service",
			Subsystem: "kafka_consumer",
			Name:      "donation_processing_duration_seconds",
			Help:      "Histogram of donation recording durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of create order requests by outcome",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "donation_service",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of create order request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentsVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "donation_service",
			Subsystem: "http",
			Name:      "payment_verifications_total",
			Help:      "Total number of payment verifications by result",
		},
		[]string{"result"},
	)

	verifyRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "donation_service",
			Subsystem: "http",
			Name:      "verify_request_duration_seconds",
			Help:      "Histogram of payment verification request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsPublished,
		publishErrors,

		donationsProcessed,
		donationsFailed,
		donationsDLQ,
		commitErrors,
		donationProcessingDuration,

		orderRequestTotal,
		orderRequestDuration,
		paymentsVerified,
		verifyRequestDuration,
	)
}
