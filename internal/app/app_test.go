package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"placement-engine/internal/config"
	"placement-engine/internal/delivery/http/middleware"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(" :9000 ")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNewContainer_RequiresDatabase(t *testing.T) {
	_, err := NewContainer(t.Context(), config.Defaults(), nil)
	assert.ErrorIs(t, err, errDatabaseNotConfigured)
}

func TestApp_RoutesAndMiddleware(t *testing.T) {
	c := &Container{
		Config:  config.Defaults(),
		Logger:  logger.Nop(),
		Metrics: metrics.NewManager(),
	}
	a := New(c)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/not-a-uuid/peers", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-1")
	resp, err = a.Fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "rid-1", resp.Header.Get(middleware.HeaderRequestID))

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `placement_engine_http_requests_total{method="GET",route="/api/v1/students/:student_id/peers",status="400"} 1`)
}
