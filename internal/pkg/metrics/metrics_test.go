package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freight/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsRequestsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(metrics.Middleware())
	e.GET("/api/v1/loads/:loadId", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/loads/:loadId", "204")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/loads/abc", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.RequestsInFlight), 1e-9)
}

func TestMiddleware_RecordsStatusOfFailedHandler(t *testing.T) {
	e := echo.New()
	e.Use(metrics.Middleware())
	e.GET("/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "no")
	})
	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 1e-9)
}

func TestTrackNotifications(t *testing.T) {
	published := metrics.NotificationsTotal.WithLabelValues("published")
	failed := metrics.NotificationsTotal.WithLabelValues("failed")
	beforePublished := testutil.ToFloat64(published)
	beforeFailed := testutil.ToFloat64(failed)

	metrics.TrackNotifications(3, 1)

	assert.InDelta(t, beforePublished+3, testutil.ToFloat64(published), 1e-9)
	assert.InDelta(t, beforeFailed+1, testutil.ToFloat64(failed), 1e-9)
}
