// Package metrics holds the Prometheus collectors of the service. Collectors are
// registered on the default registry and served on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		},
	)

	// TransitionsTotal counts load request status changes, labelled with the new status.
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_load_transitions_total",
			Help: "Load request lifecycle transitions",
		},
		[]string{"status"},
	)

	// OperationErrorsTotal counts rejected operations by error code (Conflict, TruckUnavailable, ...).
	OperationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_operation_errors_total",
			Help: "Operations that failed, by error code",
		},
		[]string{"code"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_notifications_total",
			Help: "Outbox messages handed to the notifier, by result",
		},
		[]string{"result"},
	)
)

// Middleware records request count, duration and in-flight requests. The endpoint
// label is the route pattern, not the raw path, to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			RequestsInFlight.Inc()
			defer RequestsInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "unknown"
			}
			status := strconv.Itoa(c.Response().Status)

			RequestsTotal.WithLabelValues(c.Request().Method, endpoint, status).Inc()
			RequestDuration.WithLabelValues(c.Request().Method, endpoint).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func TrackTransition(status string) {
	TransitionsTotal.WithLabelValues(status).Inc()
}

func TrackOperationError(code string) {
	OperationErrorsTotal.WithLabelValues(code).Inc()
}

func TrackNotifications(published, failed int) {
	NotificationsTotal.WithLabelValues("published").Add(float64(published))
	NotificationsTotal.WithLabelValues("failed").Add(float64(failed))
}
