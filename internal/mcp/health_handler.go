package mcp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// HealthResponse represents the JSON response for health endpoints
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// LivenessHandler always reports healthy while the process serves requests
func (s *Server) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.logger.DebugContext(ctx, "liveness check requested")

	writeHealth(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serverVersion,
	})
}

// ReadinessHandler returns 200 when storage is accessible and 503 otherwise
func (s *Server) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.logger.DebugContext(ctx, "readiness check requested")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serverVersion,
		Checks:    map[string]string{"storage": "accessible"},
	}

	if !s.storageManager.IsAccessible() {
		response.Status = "unhealthy"
		response.Checks["storage"] = "inaccessible"
		s.logger.ErrorContext(ctx, "readiness check failed", "status", "unhealthy", "storage", "inaccessible")
		writeHealth(w, http.StatusServiceUnavailable, response)
		return
	}

	if stats, err := s.storageManager.GetStorageStats(); err == nil {
		response.Details = make(map[string]string, len(stats))
		for docType, count := range stats {
			response.Details[string(docType)+"_documents"] = strconv.FormatInt(count, 10)
		}
	}

	writeHealth(w, http.StatusOK, response)
	s.logger.DebugContext(ctx, "readiness check completed", "status", "healthy")
}

func writeHealth(w http.ResponseWriter, status int, response HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}
