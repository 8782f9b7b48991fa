package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// ListDocumentsTool handles listing all stored documents
type ListDocumentsTool struct {
	storageManager *storage.StorageManager
	logger         *slog.Logger
}

// NewListDocumentsTool creates a new list documents tool
func NewListDocumentsTool(storageManager *storage.StorageManager) *ListDocumentsTool {
	return &ListDocumentsTool{
		storageManager: storageManager,
		logger:         slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *ListDocumentsTool) WithLogger(logger *slog.Logger) *ListDocumentsTool {
	t.logger = logger
	return t
}

var documentTitles = map[storage.DocumentType]string{
	storage.DocumentTypeCandidate: "Candidates",
	storage.DocumentTypeJob:       "Jobs",
	storage.DocumentTypeInterview: "Interview Sessions",
	storage.DocumentTypeReport:    "Reports",
}

// Call implements the MCP tool interface
func (t *ListDocumentsTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Type string `json:"type"` // Optional: one document type, or empty for all
	}
	if err := decodeArgs(request, &args); err != nil {
		return nil, err
	}

	types := storage.DocumentTypes
	if args.Type != "" {
		docType := storage.DocumentType(args.Type)
		if _, ok := documentTitles[docType]; !ok {
			return errorResult(&ValidationError{
				Field:  "type",
				Value:  args.Type,
				Reason: "use 'candidate', 'job', 'interview', 'report', or leave empty for all documents",
			}), nil
		}
		types = []storage.DocumentType{docType}
	}

	ids, err := t.storageManager.ListAllDocuments()
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to list documents",
			"error", err,
			"operation", "list_documents",
		)
		return errorResult(err), nil
	}

	var sb strings.Builder
	total := 0
	for _, docType := range types {
		if len(ids[docType]) == 0 {
			continue
		}
		if total == 0 {
			sb.WriteString("Stored Documents:\n")
		}
		fmt.Fprintf(&sb, "\n%s (%d):\n", documentTitles[docType], len(ids[docType]))
		for _, id := range ids[docType] {
			fmt.Fprintf(&sb, "- %s\n", storage.BuildURI(docType, id))
		}
		total += len(ids[docType])
	}

	if total == 0 {
		sb.WriteString("No documents found in storage.")
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: sb.String()},
		},
	}, nil
}
