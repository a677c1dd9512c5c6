package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/adapters/kvstore"
	httpHandlers "github.com/hydrotrack/core/internal/adapters/http"
	"github.com/hydrotrack/core/internal/adapters/repository"
	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

type offlineClient struct{}

func (offlineClient) Generate(context.Context, ports.GenerateRequest) (*ports.GenerateResponse, error) {
	return nil, errors.New("offline")
}

type brokenStore struct {
	*kvstore.MemoryStore
}

func (brokenStore) Ping(context.Context) error { return errors.New("connection refused") }

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "hydrotrack", Version: "test"},
		Storage:  config.StorageConfig{Driver: config.StorageMemory},
		Security: config.SecurityConfig{CORSAllowedOrigins: "*", RateLimitRequests: 100, RateLimitWindow: time.Minute},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, store ports.KeyValueStore) *Server {
	t.Helper()

	log := logger.NewNop()
	m := metrics.New()
	repos := repository.New(store, log, m)
	v := httpHandlers.NewValidator()

	svc := services.New(services.Deps{
		Setups:      repos.Setups,
		Plants:      repos.Plants,
		Equipment:   repos.Equipment,
		Ingredients: repos.Ingredients,
		Tasks:       repos.Tasks,
		Generator:   offlineClient{},
		Validate:    v.Engine(),
		Logger:      log,
		Metrics:     m,
	})

	srv, err := New(testConfig(), svc, v, store, m, log)
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, kvstore.NewMemoryStore())

	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/ready", "").Code)

	rec := do(srv, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"offline"`)
}

func TestServer_NotReadyWhenStoreDown(t *testing.T) {
	srv := newTestServer(t, brokenStore{kvstore.NewMemoryStore()})

	assert.Equal(t, http.StatusServiceUnavailable, do(srv, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(srv, http.MethodGet, "/health/detailed", "").Code)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, kvstore.NewMemoryStore())

	rec := do(srv, http.MethodPost, "/api/v1/setups", `{"name":"Window NFT","system_type":"NFT"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = do(srv, http.MethodGet, "/api/v1/plants/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "plant not found")

	rec = do(srv, http.MethodPost, "/api/v1/tasks", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/advisor/tip", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pH")

	rec = do(srv, http.MethodPost, "/api/v1/plants/projection", `{"species":"Basil"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":false`)

	rec = do(srv, http.MethodPost, "/api/v1/backup", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t, kvstore.NewMemoryStore())

	do(srv, http.MethodGet, "/api/v1/setups", "")
	do(srv, http.MethodGet, "/api/v1/advisor/tip", "")

	rec := do(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/v1/setups",status="200"} 1`)
	assert.Contains(t, body, `hydrotrack_collaborator_calls_total{kind="tip",outcome="fallback"} 1`)
}

func TestServer_Swagger(t *testing.T) {
	srv := newTestServer(t, kvstore.NewMemoryStore())

	rec := do(srv, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "HydroTrack API")
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(testConfig(), nil, httpHandlers.NewValidator(), kvstore.NewMemoryStore(), nil, logger.NewNop())
	assert.Error(t, err)
}
