package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/ingest"
	"github.com/kfreiman/hirecheck/internal/storage"
)

// IngestDocumentTool handles document ingestion
type IngestDocumentTool struct {
	ingestor ingest.Ingestor
	logger   *slog.Logger
}

// IngestResult is the JSON body returned by ingest_document
type IngestResult struct {
	URI  string               `json:"uri"`
	Type storage.DocumentType `json:"type"`
}

// NewIngestDocumentTool creates a new ingest document tool
func NewIngestDocumentTool(ingestor ingest.Ingestor) *IngestDocumentTool {
	return &IngestDocumentTool{
		ingestor: ingestor,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *IngestDocumentTool) WithLogger(logger *slog.Logger) *IngestDocumentTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *IngestDocumentTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Source string `json:"source"`
		Type   string `json:"type"`
	}
	if err := decodeArgs(request, &args); err != nil {
		return nil, err
	}

	if args.Source == "" {
		return errorResult(&ValidationError{Field: "source", Reason: "required parameter missing"}), nil
	}

	docType := storage.DocumentType(args.Type)
	uri, err := t.ingestor.Ingest(ctx, args.Source, docType)
	if err != nil {
		t.logger.ErrorContext(ctx, "ingestion failed",
			"error", err,
			"type", args.Type,
			"operation", "ingest_document",
		)
		return errorResult(err), nil
	}

	return jsonResult(IngestResult{URI: uri, Type: docType})
}
