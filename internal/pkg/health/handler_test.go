package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBuildInfoDefaults(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	e.GET("/ping", NewPingHandler("kaviar-admin"))

	rec := get(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "kaviar-admin", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints_Healthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("redis", PingChecker(fakePinger{}))
	svc.AddChecker("kaviar_api", PingChecker(fakePinger{}))

	e := echo.New()
	RegisterHealthEndpoints(e, "kaviar-admin", svc)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}

	rec := get(e, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Len(t, resp.Dependencies, 2)
}

func TestRegisterHealthEndpoints_Unhealthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("redis", PingChecker(fakePinger{err: errors.New("connection refused")}))
	svc.AddChecker("nats", ConnectedChecker(func() bool { return true }))

	e := echo.New()
	RegisterHealthEndpoints(e, "kaviar-admin", svc)

	// liveness is unaffected by dependencies
	assert.Equal(t, http.StatusOK, get(e, "/health").Code)

	rec := get(e, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
	assert.Equal(t, StatusHealthy, resp.Dependencies["nats"].Status)
}

func TestRegisterHealthEndpoints_NoService(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "kaviar-admin", nil)

	assert.Equal(t, http.StatusOK, get(e, "/ready").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, func() int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
		return rec.Code
	}())
}

func TestConnectedChecker(t *testing.T) {
	assert.Error(t, ConnectedChecker(func() bool { return false }).CheckHealth(context.Background()))
	assert.NoError(t, ConnectedChecker(func() bool { return true }).CheckHealth(context.Background()))
}
