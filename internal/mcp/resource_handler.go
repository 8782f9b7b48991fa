package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// StorageResourceHandler serves stored documents as JSON resources
type StorageResourceHandler struct {
	storageManager *storage.StorageManager
	logger         *slog.Logger
}

// NewStorageResourceHandler creates a new storage resource handler
func NewStorageResourceHandler(storageManager *storage.StorageManager) *StorageResourceHandler {
	return &StorageResourceHandler{
		storageManager: storageManager,
		logger:         slog.Default(),
	}
}

// WithLogger sets the logger for the handler
func (h *StorageResourceHandler) WithLogger(logger *slog.Logger) *StorageResourceHandler {
	h.logger = logger
	return h
}

// ReadResource returns the JSON payload of the stored document named by the request URI
func (h *StorageResourceHandler) ReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI

	content, err := h.storageManager.ReadDocument(uri)
	if err != nil {
		h.logger.DebugContext(ctx, "resource not found",
			"uri", uri,
			"error", err,
		)
		return nil, mcp.ResourceNotFoundError(uri)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(content),
		}},
	}, nil
}
