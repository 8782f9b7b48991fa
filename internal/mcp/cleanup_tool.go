package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// CleanupStorageTool handles storage cleanup
type CleanupStorageTool struct {
	storageManager *storage.StorageManager
	logger         *slog.Logger
}

// NewCleanupStorageTool creates a new cleanup storage tool
func NewCleanupStorageTool(storageManager *storage.StorageManager) *CleanupStorageTool {
	return &CleanupStorageTool{
		storageManager: storageManager,
		logger:         slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *CleanupStorageTool) WithLogger(logger *slog.Logger) *CleanupStorageTool {
	t.logger = logger
	return t
}

// parseTTL accepts a duration string or a whole number of hours; empty means the default TTL
func parseTTL(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	if ttl, err := time.ParseDuration(raw); err == nil {
		return ttl, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{
			Field:  "ttl",
			Value:  raw,
			Reason: "use a duration string (e.g., '24h') or hours as number",
		}
	}
	return time.Duration(hours) * time.Hour, nil
}

// Call implements the MCP tool interface
func (t *CleanupStorageTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		TTL string `json:"ttl"`
	}
	if err := decodeArgs(request, &args); err != nil {
		t.logger.ErrorContext(ctx, "failed to parse cleanup arguments",
			"error", err,
			"operation", "cleanup_storage",
		)
		return nil, err
	}

	ttl, err := parseTTL(args.TTL)
	if err != nil {
		return errorResult(err), nil
	}
	if ttl < 0 {
		return errorResult(&ValidationError{Field: "ttl", Value: args.TTL, Reason: "must not be negative"}), nil
	}

	before, err := t.storageManager.GetStorageStats()
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to get storage stats before cleanup",
			"error", err,
			"operation", "cleanup_storage",
		)
		return errorResult(err), nil
	}

	removed, err := t.storageManager.Cleanup(ttl)
	if err != nil {
		t.logger.ErrorContext(ctx, "cleanup operation failed",
			"error", err,
			"ttl", ttl,
			"operation", "cleanup_storage",
		)
		return errorResult(err), nil
	}

	after, _ := t.storageManager.GetStorageStats()

	ttlDisplay := fmt.Sprintf("default (%s)", t.storageManager.DefaultTTL())
	if ttl > 0 {
		ttlDisplay = ttl.String()
	}

	t.logger.InfoContext(ctx, "storage cleanup completed via tool",
		"ttl", ttlDisplay,
		"removed", removed,
	)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Storage cleanup completed!\n\nTTL used: %s\nFiles removed: %d\n\nStorage statistics:\n", ttlDisplay, removed)
	for _, docType := range storage.DocumentTypes {
		fmt.Fprintf(&sb, "- %s before: %d, after: %d\n", docType, before[docType], after[docType])
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: sb.String()},
		},
	}, nil
}

// StartCleanupRoutine removes expired documents every interval until ctx is cancelled.
// A zero ttl uses the storage default.
func StartCleanupRoutine(ctx context.Context, storageManager *storage.StorageManager, interval, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := storageManager.Cleanup(ttl)
			if err != nil {
				logger.ErrorContext(ctx, "periodic storage cleanup failed", "error", err)
				continue
			}
			logger.InfoContext(ctx, "periodic storage cleanup completed",
				"removed", removed,
				"interval", interval,
			)
		}
	}
}
