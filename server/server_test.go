package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddingplanner/configs"
	"weddingplanner/pkg/planner"
)

type mounterFunc func(engine *gin.Engine) error

func (f mounterFunc) RegisterRoutes(engine *gin.Engine) error {
	return f(engine)
}

func newTestServer(t *testing.T, opts ...planner.Option) *Server {
	t.Helper()

	p, err := planner.New(append([]planner.Option{planner.WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, p.Start())
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })

	s, err := NewServer(configs.ServerConfig{Port: 0, Mode: gin.TestMode}, p, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, planner.WithoutStream())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutesMounted(t *testing.T) {
	s := newTestServer(t, planner.WithoutStream())

	for _, path := range []string{
		"/api/v1/health",
		"/api/v1/checklist",
		"/api/v1/checklist/categories",
		"/api/v1/checklist/stats",
		"/api/v1/venues",
		"/api/v1/venues/regions",
	} {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestStreamRoute(t *testing.T) {
	// a plain GET is not a websocket handshake, but the route must exist
	w := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checklist/stream", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// without a hub the path falls through to the task lookup
	w = httptest.NewRecorder()
	newTestServer(t, planner.WithoutStream()).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checklist/stream", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMountError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewServer(configs.ServerConfig{Mode: gin.TestMode}, mounterFunc(func(*gin.Engine) error { return boom }), nil)
	assert.ErrorIs(t, err, boom)
}

func TestShutdownBeforeStart(t *testing.T) {
	assert.NoError(t, newTestServer(t, planner.WithoutStream()).Shutdown(t.Context()))
}
