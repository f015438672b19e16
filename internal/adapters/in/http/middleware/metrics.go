// Package middleware contains Echo middleware shared by the HTTP entry points.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Prometheus records request count, duration and in-flight gauge per route.
// The endpoint label uses the route pattern, not the raw URL, so that
// /api/v1/jobs/:jobId/bids stays a single series regardless of the id.
func Prometheus() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			start := time.Now()
			err := next(ctx)
			duration := time.Since(start).Seconds()

			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			endpoint := ctx.Path()
			if endpoint == "" {
				endpoint = "unknown"
			}

			method := ctx.Request().Method
			requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(method, endpoint).Observe(duration)

			return err
		}
	}
}
