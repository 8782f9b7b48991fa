package ingest

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/kfreiman/hirecheck/internal/redaction"
	"github.com/kfreiman/hirecheck/internal/storage"
)

// IngestorConfig holds configuration for the document ingestor
type IngestorConfig struct {
	StorageManager *storage.StorageManager
	Source         afero.Fs               // Optional: where file sources are read from, defaults to the OS
	Redactor       *redaction.PIIRedactor // Optional: defaults to redaction.DefaultRedactor
	Retry          *RetryConfig           // Optional: defaults to DefaultRetryConfig
	Logger         *slog.Logger
}

// NewIngestorWithConfig creates a new document ingestor with configuration
func NewIngestorWithConfig(config IngestorConfig) *DocumentIngestor {
	ingestor := NewIngestor(config.StorageManager)

	if config.Source != nil {
		ingestor.source = config.Source
	}
	if config.Redactor != nil {
		ingestor.redactor = config.Redactor
	}
	if config.Retry != nil {
		ingestor.retry = *config.Retry
	}
	if config.Logger != nil {
		ingestor.logger = config.Logger
	}

	return ingestor
}
