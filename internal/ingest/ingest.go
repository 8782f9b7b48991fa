// Package ingest validates candidate, job and interview documents and persists them to storage.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"github.com/kfreiman/hirecheck/internal/assessment"
	"github.com/kfreiman/hirecheck/internal/redaction"
	"github.com/kfreiman/hirecheck/internal/storage"
)

// Ingestor defines the interface for document ingestion
type Ingestor interface {
	// Ingest stores the document read from source and returns its URI,
	// e.g. "candidate://<sha256>" or "job://<sha256>"
	Ingest(ctx context.Context, source string, docType storage.DocumentType) (string, error)
}

// DocumentIngestor implements the Ingestor interface
type DocumentIngestor struct {
	storageManager *storage.StorageManager
	source         afero.Fs
	redactor       *redaction.PIIRedactor
	retry          RetryConfig
	logger         *slog.Logger
}

var validate = validator.New()

// NewIngestor creates a new document ingestor reading file sources from the OS filesystem
func NewIngestor(storageManager *storage.StorageManager) *DocumentIngestor {
	return &DocumentIngestor{
		storageManager: storageManager,
		source:         afero.NewOsFs(),
		redactor:       redaction.DefaultRedactor,
		retry:          DefaultRetryConfig,
		logger:         slog.Default(),
	}
}

// WithLogger sets a custom logger for the ingestor
func (i *DocumentIngestor) WithLogger(logger *slog.Logger) *DocumentIngestor {
	i.logger = logger
	return i
}

// Ingest implements the Ingestor interface.
// source is either a path to a JSON file or the JSON document itself.
func (i *DocumentIngestor) Ingest(ctx context.Context, source string, docType storage.DocumentType) (string, error) {
	if docType != storage.DocumentTypeCandidate && docType != storage.DocumentTypeJob && docType != storage.DocumentTypeInterview {
		return "", &ValidationError{
			Field:  "type",
			Value:  string(docType),
			Reason: "must be 'candidate', 'job' or 'interview'",
		}
	}

	raw, name, err := i.load(ctx, source, docType)
	if err != nil {
		return "", err
	}

	content, err := i.normalize(ctx, raw, docType)
	if err != nil {
		return "", err
	}

	var uri string
	err = Retry(ctx, i.retry, func(attempt int) error {
		var saveErr error
		uri, saveErr = i.storageManager.SaveDocument(docType, content, name)
		if saveErr != nil {
			i.logger.WarnContext(ctx, "save attempt failed",
				"error", saveErr,
				"attempt", attempt,
				"doc_type", docType,
			)
		}
		return saveErr
	})
	if err != nil {
		return "", err
	}

	i.logger.InfoContext(ctx, "document ingested",
		"uri", uri,
		"doc_type", docType,
		"name", name,
	)
	return uri, nil
}

// load returns the raw JSON and a display name for source
func (i *DocumentIngestor) load(ctx context.Context, source string, docType storage.DocumentType) ([]byte, string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, "", &ValidationError{Field: "source", Reason: "must not be empty"}
	}
	if isInlineJSON(trimmed) {
		return []byte(trimmed), string(docType) + ".json", nil
	}

	if err := validatePath(trimmed); err != nil {
		return nil, "", err
	}

	var data []byte
	err := Retry(ctx, i.retry, func(attempt int) error {
		var readErr error
		data, readErr = afero.ReadFile(i.source, trimmed)
		if readErr != nil {
			return &SourceError{Path: trimmed, Err: readErr}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return data, filepath.Base(trimmed), nil
}

// normalize decodes raw into the typed document, validates it and re-encodes it canonically,
// so byte-different but equivalent inputs deduplicate to the same URI
func (i *DocumentIngestor) normalize(ctx context.Context, raw []byte, docType storage.DocumentType) ([]byte, error) {
	switch docType {
	case storage.DocumentTypeCandidate:
		var profile assessment.CandidateProfile
		if err := decodeAndValidate(raw, &profile); err != nil {
			return nil, err
		}
		counts := i.redactor.CountPIIItems([]byte(profile.ResumeText))
		profile.ResumeText = i.redactor.RedactString(profile.ResumeText)
		i.logger.DebugContext(ctx, "resume text redacted", "counts", counts)
		return json.Marshal(profile)

	case storage.DocumentTypeJob:
		var job assessment.JobRequirement
		if err := decodeAndValidate(raw, &job); err != nil {
			return nil, err
		}
		return json.Marshal(job)

	default:
		var session assessment.InterviewSession
		if err := decodeAndValidate(raw, &session); err != nil {
			return nil, err
		}
		if session.Responses == nil {
			session.Responses = []assessment.InterviewResponse{}
		}
		return json.Marshal(session)
	}
}

func decodeAndValidate(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &ValidationError{Field: "content", Reason: fmt.Sprintf("invalid JSON document: %v", err)}
	}

	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				Field:  fe.Namespace(),
				Value:  fmt.Sprint(fe.Value()),
				Reason: fmt.Sprintf("failed '%s' rule", fe.Tag()),
			}
		}
		return &ValidationError{Field: "content", Reason: err.Error()}
	}
	return nil
}

func isInlineJSON(s string) bool {
	return strings.HasPrefix(s, "{")
}

// validatePath validates a file path to prevent path traversal
func validatePath(path string) error {
	if strings.Contains(path, "..") {
		return &SecurityError{
			Type:    "path_traversal",
			Details: fmt.Sprintf("path contains traversal sequence: %s", path),
		}
	}

	if strings.Contains(path, "\x00") {
		return &SecurityError{
			Type:    "null_byte",
			Details: "path contains null bytes",
		}
	}

	return nil
}
