package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-resume-backend/pkg/metrics"
)

func newLoggedApp(t *testing.T) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewWith(prometheus.NewRegistry())
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/thread/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, m
}

func TestRequestLoggerLabelsRoutePattern(t *testing.T) {
	app, m := newLoggedApp(t)

	for _, id := range []string{"abc", "def", "ghi"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/thread/"+id, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// One series for the route pattern, not one per thread id.
	pattern := m.HTTPRequestsTotal.WithLabelValues("GET", "/thread/:id", "200")
	assert.Equal(t, 3.0, testutil.ToFloat64(pattern))
	raw := m.HTTPRequestsTotal.WithLabelValues("GET", "/thread/abc", "200")
	assert.Equal(t, 0.0, testutil.ToFloat64(raw))
}

func TestRequestLoggerRecordsErrorStatus(t *testing.T) {
	app, m := newLoggedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unmatched routes surface as fiber.ErrNotFound from c.Next();
	// the recorded status must be 404, not the default 200.
	notFound := m.HTTPRequestsTotal.WithLabelValues("GET", "/", "404")
	assert.Equal(t, 1.0, testutil.ToFloat64(notFound))
	ok := m.HTTPRequestsTotal.WithLabelValues("GET", "/", "200")
	assert.Equal(t, 0.0, testutil.ToFloat64(ok))
}
