// Package mcp exposes document ingestion, candidate assessment and report retrieval
// as Model Context Protocol tools over streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/assessment"
	"github.com/kfreiman/hirecheck/internal/ingest"
	"github.com/kfreiman/hirecheck/internal/screening"
	"github.com/kfreiman/hirecheck/internal/storage"
	"github.com/kfreiman/hirecheck/internal/textmatch"
)

const (
	serverName    = "HireCheckServer"
	serverVersion = "1.0.0"
	serviceName   = "hirecheck-mcp"
)

// Server encapsulates the MCP server with all its dependencies
type Server struct {
	mcpServer      *mcp.Server
	storageManager *storage.StorageManager
	ingestor       *ingest.DocumentIngestor
	screener       *screening.Screener
	logger         *slog.Logger
	config         Config
}

// Option customizes server construction
type Option func(*options)

type options struct {
	fs storage.FileSystem
}

// WithFileSystem stores documents on fs instead of the OS filesystem
func WithFileSystem(fs storage.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// NewServer creates a new MCP server with the given configuration
func NewServer(cfg Config, logger *slog.Logger, opts ...Option) (*Server, error) {
	ctx := context.Background()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ttl, err := time.ParseDuration(cfg.StorageTTL)
	if err != nil {
		logger.ErrorContext(ctx, "failed to parse storage TTL",
			"error", err,
			"ttl", cfg.StorageTTL,
		)
		return nil, fmt.Errorf("parse TTL: %w", err)
	}

	storageManager, err := storage.NewStorageManager(storage.StorageConfig{
		BasePath:   cfg.StoragePath,
		DefaultTTL: ttl,
		Logger:     logger,
		FileSystem: o.fs,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize storage manager",
			"error", err,
		)
		return nil, fmt.Errorf("storage init: %w", err)
	}

	engineConfig, err := assessment.LoadConfig(cfg.EngineConfig)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load engine config",
			"error", err,
			"path", cfg.EngineConfig,
		)
		return nil, fmt.Errorf("engine config: %w", err)
	}
	engine, err := assessment.NewEngine(engineConfig)
	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}
	engine.WithLogger(logger).WithTermAnalyzer(textmatch.NewAnalyzer().WithLogger(logger))

	s := &Server{
		storageManager: storageManager,
		ingestor: ingest.NewIngestorWithConfig(ingest.IngestorConfig{
			StorageManager: storageManager,
			Logger:         logger,
		}),
		screener: screening.NewScreener(engine, storageManager).WithLogger(logger),
		logger:   logger,
		config:   cfg,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: ServerInstructions,
	})

	s.registerResources()
	s.registerTools()

	return s, nil
}

// registerResources registers the stored document resource templates
func (s *Server) registerResources() {
	handler := NewStorageResourceHandler(s.storageManager).WithLogger(s.logger)
	for _, template := range ResourceTemplateDefinitions {
		s.mcpServer.AddResourceTemplate(template, handler.ReadResource)
	}
}

// registerTools registers all tool handlers
func (s *Server) registerTools() {
	s.mcpServer.AddTool(ToolDefinitions["ingest_document"],
		NewIngestDocumentTool(s.ingestor).WithLogger(s.logger).Call)

	s.mcpServer.AddTool(ToolDefinitions["assess_candidate"],
		NewAssessCandidateTool(s.screener).WithLogger(s.logger).Call)

	s.mcpServer.AddTool(ToolDefinitions["assess_batch"],
		NewAssessBatchTool(s.screener, s.config.BatchConcurrency).WithLogger(s.logger).Call)

	s.mcpServer.AddTool(ToolDefinitions["get_report"],
		NewGetReportTool(s.storageManager).WithLogger(s.logger).Call)

	s.mcpServer.AddTool(ToolDefinitions["list_documents"],
		NewListDocumentsTool(s.storageManager).WithLogger(s.logger).Call)

	s.mcpServer.AddTool(ToolDefinitions["cleanup_storage"],
		NewCleanupStorageTool(s.storageManager).WithLogger(s.logger).Call)
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	httpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{
		JSONResponse: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpHandler)
	mux.HandleFunc("/health/live", s.LivenessHandler)
	mux.HandleFunc("/health/ready", s.ReadinessHandler)
	mux.HandleFunc("/", s.indexHandler)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts the HTTP server down
func (s *Server) ListenAndServe(ctx context.Context) error {
	if interval, err := time.ParseDuration(s.config.CleanupInterval); err == nil && interval > 0 {
		go StartCleanupRoutine(ctx, s.storageManager, interval, 0, s.logger)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting MCP server",
			"port", s.config.Port,
			"endpoints", []string{"/mcp", "/health/live", "/health/ready", "/"},
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "shutting down MCP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// indexHandler returns the server information page
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "HireCheck MCP Server\n\n")
	fmt.Fprintf(w, "Endpoints:\n")
	fmt.Fprintf(w, "  POST /mcp          - Streamable HTTP transport\n")
	fmt.Fprintf(w, "  GET  /health/live  - Liveness probe\n")
	fmt.Fprintf(w, "  GET  /health/ready - Readiness probe\n")
	fmt.Fprintf(w, "  GET  /             - This help message\n\n")
	fmt.Fprintf(w, "Server: %s %s\n", serverName, serverVersion)
}
