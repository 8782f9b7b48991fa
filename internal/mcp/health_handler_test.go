package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfreiman/hirecheck/internal/storage"
)

func newTestServer(t *testing.T) (*Server, storage.FileSystem) {
	t.Helper()

	fs := storage.NewMemMapFileSystem()
	cfg := Config{
		StoragePath:      "/test-storage",
		StorageTTL:       "24h",
		CleanupInterval:  "0",
		Port:             8080,
		BatchConcurrency: 2,
	}
	server, err := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), WithFileSystem(fs))
	require.NoError(t, err)
	return server, fs
}

func TestServer_LivenessHandler(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health/live", nil)
	w := httptest.NewRecorder()
	server.LivenessHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"service":"hirecheck-mcp"`)
	assert.Contains(t, w.Body.String(), `"timestamp"`)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestServer_ReadinessHandler_StorageAccessible(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()
	server.ReadinessHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "accessible", response.Checks["storage"])
	assert.Equal(t, "0", response.Details["candidate_documents"])
	assert.Equal(t, "0", response.Details["report_documents"])
}

func TestServer_ReadinessHandler_StorageInaccessible(t *testing.T) {
	server, fs := newTestServer(t)
	require.NoError(t, fs.RemoveAll("/test-storage/candidate"))

	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()
	server.ReadinessHandler(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, w.Body.String(), `"storage":"inaccessible"`)
}

func TestServer_Routes(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/", http.StatusOK, "HireCheck MCP Server"},
		{"/health/live", http.StatusOK, `"healthy"`},
		{"/health/ready", http.StatusOK, `"accessible"`},
		{"/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestNewServer_InvalidConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewServer(Config{StoragePath: "/s", StorageTTL: "soon"}, logger, WithFileSystem(storage.NewMemMapFileSystem()))
	assert.ErrorContains(t, err, "parse TTL")

	_, err = NewServer(Config{StoragePath: "/s", StorageTTL: "1h", EngineConfig: "/no/such/engine.yaml"}, logger,
		WithFileSystem(storage.NewMemMapFileSystem()))
	assert.ErrorContains(t, err, "engine config")
}
