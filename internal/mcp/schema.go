package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ServerInstructions contains the MCP server instructions for clients
const ServerInstructions = `HireCheck Server - Candidate Assessment Engine

This server stores candidate profiles, job requirements and interview sessions, and scores
candidates against jobs into hiring recommendation reports.

## Transport

Streamable HTTP only:
- POST /mcp

## Resources

- candidate://{id}: A stored candidate profile (JSON)
- job://{id}: A stored job requirement (JSON)
- interview://{id}: A stored interview session (JSON)
- report://{id}: A stored assessment report (JSON)

## Tools

### ingest_document
Validate and store a candidate profile, job requirement or interview session.
Parameters:
- source: Path to a JSON file, or the JSON document itself
- type: "candidate", "job" or "interview"

Resume text of candidates is redacted (emails, phone numbers, SSNs, card numbers) before storage.
Returns the document URI.

### assess_candidate
Score one candidate against one job and store the report.
Parameters:
- candidate_uri: candidate://{id}
- job_uri: job://{id}
- interview_uri: Optional interview://{id}

Returns the report URI and the report.

### assess_batch
Score several candidates against one job in parallel.
Parameters:
- job_uri: job://{id}
- candidate_uris: List of candidate://{id}
- concurrency: Optional parallelism limit

### get_report
Fetch a stored report.
Parameters:
- report_uri: report://{id}

### list_documents
List stored document URIs.
Parameters:
- type: Optional filter: "candidate", "job", "interview" or "report"

### cleanup_storage
Remove documents older than the TTL.
Parameters:
- ttl: Optional duration ("48h") or hours as a number; defaults to STORAGE_TTL

## Environment Variables

- STORAGE_PATH: Storage directory (default: ./storage)
- STORAGE_TTL: Default TTL for cleanup (default: 24h)
- CLEANUP_INTERVAL: Period of background cleanup (default: 0, disabled)
- PORT: HTTP server port (default: 8080)
- ENGINE_CONFIG: YAML/JSON file overriding weights, thresholds and lookup tables
- BATCH_CONCURRENCY: Default parallelism of assess_batch (default: 4)
`

var documentTypeEnum = []string{"candidate", "job", "interview", "report"}

// ToolDefinitions contains the MCP tool definitions
var ToolDefinitions = map[string]*mcp.Tool{
	"ingest_document": {
		Name:        "ingest_document",
		Description: "Validate and store a candidate profile, job requirement or interview session given as a JSON file path or inline JSON. Returns a URI for later use.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Path to a JSON file, or the JSON document itself",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Document type",
					"enum":        []string{"candidate", "job", "interview"},
				},
			},
			"required": []string{"source", "type"},
		},
	},
	"assess_candidate": {
		Name:        "assess_candidate",
		Description: "Assess a stored candidate against a stored job, optionally with an interview session. Stores and returns the assessment report with overall score, component scores, risk factors and hiring recommendation.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"candidate_uri": map[string]interface{}{
					"type":        "string",
					"description": "URI of an ingested candidate (candidate://{id})",
				},
				"job_uri": map[string]interface{}{
					"type":        "string",
					"description": "URI of an ingested job (job://{id})",
				},
				"interview_uri": map[string]interface{}{
					"type":        "string",
					"description": "Optional URI of an ingested interview session (interview://{id})",
				},
			},
			"required": []string{"candidate_uri", "job_uri"},
		},
	},
	"assess_batch": {
		Name:        "assess_batch",
		Description: "Assess several stored candidates against one job in parallel. Results keep the input order; per-candidate failures are reported inline.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"job_uri": map[string]interface{}{
					"type":        "string",
					"description": "URI of an ingested job (job://{id})",
				},
				"candidate_uris": map[string]interface{}{
					"type":        "array",
					"description": "URIs of ingested candidates",
					"items":       map[string]interface{}{"type": "string"},
					"minItems":    1,
				},
				"concurrency": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum assessments in flight (default: server setting)",
					"minimum":     1,
				},
			},
			"required": []string{"job_uri", "candidate_uris"},
		},
	},
	"get_report": {
		Name:        "get_report",
		Description: "Fetch a stored assessment report by URI.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"report_uri": map[string]interface{}{
					"type":        "string",
					"description": "URI of a stored report (report://{id})",
				},
			},
			"required": []string{"report_uri"},
		},
	},
	"list_documents": {
		Name:        "list_documents",
		Description: "List stored document URIs, optionally filtered by type.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Optional filter; empty lists every type",
					"enum":        documentTypeEnum,
				},
			},
			"required": []string{},
		},
	},
	"cleanup_storage": {
		Name:        "cleanup_storage",
		Description: "Remove documents older than the specified TTL from storage.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ttl": map[string]interface{}{
					"type":        "string",
					"description": "Time to live (e.g., '48h', or hours as number). Uses default TTL if not specified.",
				},
			},
			"required": []string{},
		},
	},
}

// ResourceTemplateDefinitions contains the MCP resource template definitions
var ResourceTemplateDefinitions = []*mcp.ResourceTemplate{
	{
		URITemplate: "candidate://{id}",
		Name:        "Candidate Profile",
		Description: "A stored candidate profile by content id",
		MIMEType:    "application/json",
	},
	{
		URITemplate: "job://{id}",
		Name:        "Job Requirement",
		Description: "A stored job requirement by content id",
		MIMEType:    "application/json",
	},
	{
		URITemplate: "interview://{id}",
		Name:        "Interview Session",
		Description: "A stored interview session by content id",
		MIMEType:    "application/json",
	},
	{
		URITemplate: "report://{id}",
		Name:        "Assessment Report",
		Description: "A stored assessment report by id",
		MIMEType:    "application/json",
	},
}
