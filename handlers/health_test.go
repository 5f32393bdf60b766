package handlers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthAndReady(t *testing.T) {
	healthy := pingFunc(func(context.Context) error { return nil })
	r := gin.New()
	NewHealthHandler(filepath.Join(t.TempDir(), "data"), map[string]Pinger{"redis": healthy}).Register(r)

	w := do(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", w.Body.String())

	w = do(r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	require.Equal(t, "ready", body["status"])
	require.Equal(t, map[string]any{"data": true, "redis": true}, body["deps"])
}

func TestReady_FailingDependency(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	r := gin.New()
	NewHealthHandler(t.TempDir(), map[string]Pinger{"mongo": down}).Register(r)

	w := do(r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode[map[string]any](t, w)
	require.Equal(t, "not_ready", body["status"])
	require.Equal(t, false, body["deps"].(map[string]any)["mongo"])
}
