package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders created through the storefront",
		},
		[]string{"kind"}, // kind: catalog, custom
	)

	ConsultationsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "consultations_scheduled_total",
			Help: "Consultations scheduled through the storefront",
		},
	)

	IdeasGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideas_generated_total",
			Help: "AI idea assistant calls",
		},
		[]string{"flow", "outcome"}, // flow: text, structured; outcome: ok, fallback, rate_limited
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Admin sign-in attempts",
		},
		[]string{"outcome"}, // ok, not_found, wrong_password, rate_limited
	)
)
