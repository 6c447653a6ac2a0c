package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddingplanner/configs"
	"weddingplanner/repository/memory"
	"weddingplanner/seed"
	"weddingplanner/webhook"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestNewWithInvalidOptions tests that New() returns errors for invalid options
func TestNewWithInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "nil postgres pool", opts: []Option{WithPostgres(nil)}},
		{name: "nil mysql handle", opts: []Option{WithMySQL(nil)}},
		{name: "nil repositories", opts: []Option{WithRepositories(nil, nil, nil)}},
		{name: "empty migrations dir", opts: []Option{WithAutoMigration("")}},
		{name: "empty route prefix", opts: []Option{WithRoutePrefix("")}},
		{name: "zero stream buffers", opts: []Option{WithStream(0, 10)}},
		{name: "nil logger", opts: []Option{WithLogger(nil)}},
		{
			name: "webhooks without workers",
			opts: []Option{WithWebhooks(configs.WebhookConfig{
				URLs:      []string{"http://localhost:9000/hook"},
				Timeout:   time.Second,
				QueueSize: 10,
			})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	p, err := New(WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, p.config.Storage)
	assert.Equal(t, "/api/v1", p.config.RoutePrefix)
	assert.True(t, p.config.Seed)
	assert.NotNil(t, p.hub)
	assert.Nil(t, p.dispatcher)

	tasks, err := p.Checklist().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	regions, err := p.Venues().Regions(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, regions)
}

func TestNewWithoutSeed(t *testing.T) {
	p, err := New(WithLogger(zap.NewNop()), WithSeed(false), WithoutStream())
	require.NoError(t, err)

	tasks, err := p.Checklist().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Nil(t, p.hub)
}

func TestWithRepositories(t *testing.T) {
	p, err := New(
		WithLogger(zap.NewNop()),
		WithRepositories(
			memory.NewTaskRepository(seed.Tasks()[:3]),
			memory.NewVenueRepository(seed.Venues()),
			memory.NewUserRepository(),
		),
	)
	require.NoError(t, err)
	assert.Equal(t, StorageCustom, p.config.Storage)

	tasks, err := p.Checklist().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestStorageModeString(t *testing.T) {
	assert.Equal(t, "memory", StorageMemory.String())
	assert.Equal(t, "postgres", StoragePostgres.String())
	assert.Equal(t, "mysql", StorageMySQL.String())
	assert.Equal(t, "custom", StorageCustom.String())
	assert.Equal(t, "unknown", StorageMode(42).String())
}

func TestLifecycle(t *testing.T) {
	p, err := New(WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, "stopped", p.HealthCheck(context.Background()).Status)

	require.NoError(t, p.Start())
	assert.Error(t, p.Start(), "second start must fail")

	status := p.HealthCheck(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "memory", status.Storage)
	require.NotNil(t, status.Stream)
	assert.Nil(t, status.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))
	assert.Error(t, p.Start(), "start after shutdown must fail")
}

func TestRegisterRoutes(t *testing.T) {
	p, err := New(WithLogger(zap.NewNop()), WithRoutePrefix("/wedding"), WithoutStream())
	require.NoError(t, err)
	require.NoError(t, p.Start())
	defer p.Shutdown(context.Background())

	assert.Error(t, p.RegisterRoutes(nil))

	engine := gin.New()
	require.NoError(t, p.RegisterRoutes(engine))

	tests := []struct {
		path   string
		status int
	}{
		{"/wedding/health", http.StatusOK},
		{"/wedding/checklist", http.StatusOK},
		{"/wedding/checklist/stats", http.StatusOK},
		{"/wedding/venues/regions", http.StatusOK},
		{"/wedding/checklist/stream", http.StatusNotFound},
		{"/api/v1/checklist", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHealthRouteBeforeStart(t *testing.T) {
	p, err := New(WithLogger(zap.NewNop()), WithoutStream())
	require.NoError(t, err)

	engine := gin.New()
	require.NoError(t, p.RegisterRoutes(engine))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "stopped", status.Status)
	assert.False(t, status.Started)
}

func TestWebhookDeliveryOnTaskCreate(t *testing.T) {
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- r
		bodies <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer target.Close()

	p, err := New(
		WithLogger(zap.NewNop()),
		WithoutStream(),
		WithWebhooks(configs.WebhookConfig{
			URLs:         []string{target.URL},
			Secret:       "s3cret",
			Timeout:      time.Second,
			Workers:      1,
			QueueSize:    4,
			MaxRetries:   1,
			RetryBackoff: 10 * time.Millisecond,
			MaxFailures:  3,
			ResetTimeout: time.Minute,
		}),
	)
	require.NoError(t, err)
	require.NoError(t, p.Start())

	engine := gin.New()
	require.NoError(t, p.RegisterRoutes(engine))

	payload, _ := json.Marshal(map[string]any{"title": "Book DJ", "category": "Music"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checklist", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	select {
	case r := <-received:
		body := <-bodies
		assert.Equal(t, "task_added", r.Header.Get(webhook.HeaderEventType))
		assert.True(t, webhook.Verify("s3cret", body, r.Header.Get(webhook.HeaderSignature)))

		var event webhook.Event
		require.NoError(t, json.Unmarshal(body, &event))
		assert.Equal(t, "Book DJ", event.Task.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	status := p.HealthCheck(context.Background())
	require.NotNil(t, status.Workers)
	assert.Equal(t, 1, status.Workers.Total)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, p.Shutdown(ctx))
}
