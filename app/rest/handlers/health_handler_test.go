package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(context.Context) error {
	return s.err
}

func getContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler(stubChecker{}, stubChecker{}, slog.Default())

	c, rec := getContext("/api/health")
	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ThinkSync Enhanced Edition", resp.Service)
	assert.Equal(t, "2.0.0", resp.Version)
	assert.Len(t, resp.Features, 6)
	assert.Contains(t, resp.Features, "SOAP/BIRP Clinical Documentation")
}

func TestHealthHandler_ReadinessCheck(t *testing.T) {
	t.Run("ready when dependencies are up", func(t *testing.T) {
		handler := NewHealthHandler(stubChecker{}, stubChecker{}, slog.Default())

		c, rec := getContext("/api/health/ready")
		require.NoError(t, handler.ReadinessCheck(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["database"].Status)
		assert.Equal(t, "healthy", resp.Checks["kratos"].Status)
	})

	t.Run("not ready when a dependency is down", func(t *testing.T) {
		handler := NewHealthHandler(stubChecker{err: errors.New("connection refused")}, stubChecker{}, slog.Default())

		c, rec := getContext("/api/health/ready")
		require.NoError(t, handler.ReadinessCheck(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not ready", resp.Status)
		assert.Equal(t, "unhealthy", resp.Checks["database"].Status)
	})
}
