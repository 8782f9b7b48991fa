package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/hirecheck/internal/screening"
	"github.com/kfreiman/hirecheck/internal/storage"
)

// Assessor runs assessments over stored documents
type Assessor interface {
	Assess(ctx context.Context, req screening.Request) (*screening.Outcome, error)
	AssessBatch(ctx context.Context, jobURI string, candidateURIs []string, concurrency int) ([]screening.BatchItem, error)
}

// AssessCandidateTool scores one stored candidate against one stored job
type AssessCandidateTool struct {
	assessor Assessor
	logger   *slog.Logger
}

// NewAssessCandidateTool creates a new assess candidate tool
func NewAssessCandidateTool(assessor Assessor) *AssessCandidateTool {
	return &AssessCandidateTool{
		assessor: assessor,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *AssessCandidateTool) WithLogger(logger *slog.Logger) *AssessCandidateTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *AssessCandidateTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args screening.Request
	if err := decodeArgs(request, &args); err != nil {
		return nil, err
	}

	if err := requireURI("candidate_uri", args.CandidateURI, storage.DocumentTypeCandidate); err != nil {
		return errorResult(err), nil
	}
	if err := requireURI("job_uri", args.JobURI, storage.DocumentTypeJob); err != nil {
		return errorResult(err), nil
	}
	if args.InterviewURI != "" {
		if err := requireURI("interview_uri", args.InterviewURI, storage.DocumentTypeInterview); err != nil {
			return errorResult(err), nil
		}
	}

	outcome, err := t.assessor.Assess(ctx, args)
	if err != nil {
		t.logger.ErrorContext(ctx, "assessment failed",
			"error", err,
			"candidate_uri", args.CandidateURI,
			"job_uri", args.JobURI,
			"operation", "assess_candidate",
		)
		return errorResult(err), nil
	}

	return jsonResult(outcome)
}

// AssessBatchTool scores several stored candidates against one stored job
type AssessBatchTool struct {
	assessor    Assessor
	concurrency int
	logger      *slog.Logger
}

// BatchResult is the JSON body returned by assess_batch
type BatchResult struct {
	JobURI    string                `json:"job_uri"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Results   []screening.BatchItem `json:"results"`
}

// NewAssessBatchTool creates a new batch tool; concurrency applies when the call gives none
func NewAssessBatchTool(assessor Assessor, concurrency int) *AssessBatchTool {
	return &AssessBatchTool{
		assessor:    assessor,
		concurrency: concurrency,
		logger:      slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *AssessBatchTool) WithLogger(logger *slog.Logger) *AssessBatchTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *AssessBatchTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		JobURI        string   `json:"job_uri"`
		CandidateURIs []string `json:"candidate_uris"`
		Concurrency   int      `json:"concurrency"`
	}
	if err := decodeArgs(request, &args); err != nil {
		return nil, err
	}

	if err := requireURI("job_uri", args.JobURI, storage.DocumentTypeJob); err != nil {
		return errorResult(err), nil
	}
	if len(args.CandidateURIs) == 0 {
		return errorResult(&ValidationError{Field: "candidate_uris", Reason: "at least one candidate is required"}), nil
	}
	for i, uri := range args.CandidateURIs {
		if err := requireURI(fmt.Sprintf("candidate_uris[%d]", i), uri, storage.DocumentTypeCandidate); err != nil {
			return errorResult(err), nil
		}
	}

	concurrency := args.Concurrency
	if concurrency <= 0 {
		concurrency = t.concurrency
	}

	items, err := t.assessor.AssessBatch(ctx, args.JobURI, args.CandidateURIs, concurrency)
	if err != nil {
		t.logger.ErrorContext(ctx, "batch assessment failed",
			"error", err,
			"job_uri", args.JobURI,
			"operation", "assess_batch",
		)
		return errorResult(err), nil
	}

	result := BatchResult{JobURI: args.JobURI, Results: items}
	for _, item := range items {
		if item.Error != "" {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	return jsonResult(result)
}
