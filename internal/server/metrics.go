package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectionsTotal counts projection requests by endpoint and outcome.
	ProjectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacsim_projections_total",
			Help: "Projection requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// ProjectionDuration observes engine time per request.
	ProjectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pacsim_projection_duration_seconds",
			Help:    "Time spent projecting scenarios",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"endpoint"},
	)
)

// Outcome labels.
const (
	statusSuccess         = "success"
	statusValidationError = "validation_error"
	statusError           = "error"
)

func observe(endpoint string, start time.Time) {
	ProjectionDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
