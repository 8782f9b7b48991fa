package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// GetReportTool returns stored assessment reports
type GetReportTool struct {
	storageManager *storage.StorageManager
	logger         *slog.Logger
}

// NewGetReportTool creates a new get report tool
func NewGetReportTool(storageManager *storage.StorageManager) *GetReportTool {
	return &GetReportTool{
		storageManager: storageManager,
		logger:         slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *GetReportTool) WithLogger(logger *slog.Logger) *GetReportTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *GetReportTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ReportURI string `json:"report_uri"`
	}
	if err := decodeArgs(request, &args); err != nil {
		return nil, err
	}

	if err := requireURI("report_uri", args.ReportURI, storage.DocumentTypeReport); err != nil {
		return errorResult(err), nil
	}

	content, err := t.storageManager.ReadDocument(args.ReportURI)
	if err != nil {
		t.logger.DebugContext(ctx, "report lookup failed",
			"error", err,
			"report_uri", args.ReportURI,
		)
		return errorResult(err), nil
	}

	return jsonResult(json.RawMessage(content))
}
