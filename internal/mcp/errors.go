package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// ValidationError represents invalid tool arguments
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// errorResult reports a tool failure to the client as a tool result rather than a protocol error
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)},
		},
	}
}

// jsonResult encodes v as the indented JSON text of a tool result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

// decodeArgs unmarshals the raw tool arguments; a missing argument object decodes as empty
func decodeArgs(request *mcp.CallToolRequest, v any) error {
	if request == nil || request.Params == nil || len(request.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(request.Params.Arguments, v); err != nil {
		return &ValidationError{
			Field:  "arguments",
			Reason: fmt.Sprintf("invalid JSON format: %v", err),
		}
	}
	return nil
}

// requireURI checks that uri is a well-formed URI of the wanted document type
func requireURI(field, uri string, want storage.DocumentType) error {
	if uri == "" {
		return &ValidationError{Field: field, Reason: "required parameter missing"}
	}
	docType, _, err := storage.ParseURI(uri)
	if err != nil || docType != want {
		return &ValidationError{
			Field:  field,
			Value:  uri,
			Reason: fmt.Sprintf("must be a %s:// URI", want),
		}
	}
	return nil
}
