// Package storage persists candidate, job, interview and report documents as JSON
// envelopes on an afero filesystem, addressed by typed URIs such as candidate://<id>.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StorageError represents a storage-related failure
type StorageError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StorageError) Error() string {
	msg := fmt.Sprintf("storage error during %s", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether retrying the operation may succeed.
// Missing documents and malformed URIs are permanent.
func (e *StorageError) IsRetryable() bool {
	return !errors.Is(e.Err, ErrNotFound) && !errors.Is(e.Err, ErrInvalidURI)
}

var (
	// ErrNotFound is wrapped by StorageError when a URI does not resolve to a document
	ErrNotFound = errors.New("document not found")
	// ErrInvalidURI is wrapped by StorageError for unparseable URIs
	ErrInvalidURI = errors.New("invalid document URI")
)

// DocumentType represents the type of document being stored
type DocumentType string

const (
	DocumentTypeCandidate DocumentType = "candidate"
	DocumentTypeJob       DocumentType = "job"
	DocumentTypeInterview DocumentType = "interview"
	DocumentTypeReport    DocumentType = "report"
)

// DocumentTypes lists every stored type in a stable order
var DocumentTypes = []DocumentType{
	DocumentTypeCandidate,
	DocumentTypeJob,
	DocumentTypeInterview,
	DocumentTypeReport,
}

const documentExt = ".json"

// Metadata describes a stored document
type Metadata struct {
	ID       string       `json:"id"`
	Type     DocumentType `json:"type"`
	Name     string       `json:"name,omitempty"`
	StoredAt time.Time    `json:"stored_at"`
}

// Document is the on-disk envelope: metadata plus the raw JSON payload
type Document struct {
	Metadata Metadata        `json:"metadata"`
	Content  json.RawMessage `json:"content"`
}

// URI returns the typed URI of the document
func (d *Document) URI() string {
	return BuildURI(d.Metadata.Type, d.Metadata.ID)
}

// StorageConfig holds configuration for the storage manager
type StorageConfig struct {
	BasePath   string
	DefaultTTL time.Duration
	Logger     *slog.Logger // Optional: defaults to a discarding logger
	FileSystem FileSystem   // Optional: defaults to the OS filesystem
}

// StorageManager handles document storage with content-addressed naming
type StorageManager struct {
	basePath   string
	defaultTTL time.Duration
	logger     *slog.Logger
	fs         FileSystem
	now        func() time.Time
}

// NewStorageManager creates a storage manager and its per-type directories
func NewStorageManager(config StorageConfig) (*StorageManager, error) {
	ctx := context.Background()

	if config.BasePath == "" {
		config.BasePath = "./storage"
	}
	if config.DefaultTTL == 0 {
		config.DefaultTTL = 24 * time.Hour
	}
	if config.FileSystem == nil {
		config.FileSystem = NewOSFileSystem()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, docType := range DocumentTypes {
		path := filepath.Join(config.BasePath, string(docType))
		if err := config.FileSystem.MkdirAll(path, 0755); err != nil {
			config.Logger.ErrorContext(ctx, "failed to create storage directory",
				"error", err,
				"path", path,
				"operation", "init",
			)
			return nil, &StorageError{
				Operation: "init - create directory",
				Path:      path,
				Err:       err,
			}
		}
	}

	config.Logger.InfoContext(ctx, "storage manager initialized",
		"base_path", config.BasePath,
		"default_ttl", config.DefaultTTL,
	)

	return &StorageManager{
		basePath:   config.BasePath,
		defaultTTL: config.DefaultTTL,
		logger:     config.Logger,
		fs:         config.FileSystem,
		now:        time.Now,
	}, nil
}

// DefaultTTL returns the retention used by Cleanup when no TTL is given
func (sm *StorageManager) DefaultTTL() time.Duration {
	return sm.defaultTTL
}

// GetPath returns the storage directory for a document type
func (sm *StorageManager) GetPath(docType DocumentType) string {
	return filepath.Join(sm.basePath, string(docType))
}

// GenerateID returns the hex SHA-256 of content
func GenerateID(content []byte) string {
	hash := sha256.Sum256(content)
	return fmt.Sprintf("%x", hash)
}

// BuildURI formats a typed document URI
func BuildURI(docType DocumentType, id string) string {
	return fmt.Sprintf("%s://%s", docType, id)
}

// ParseURI parses a URI into document type and ID
func ParseURI(uri string) (DocumentType, string, error) {
	scheme, id, ok := strings.Cut(uri, "://")
	if !ok {
		return "", "", &StorageError{
			Operation: "parse URI",
			Err:       fmt.Errorf("%w: missing scheme in %q", ErrInvalidURI, uri),
		}
	}

	docType := DocumentType(scheme)
	if !isKnownType(docType) {
		return "", "", &StorageError{
			Operation: "parse URI",
			Err:       fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURI, scheme),
		}
	}

	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", "", &StorageError{
			Operation: "parse URI",
			Err:       fmt.Errorf("%w: bad document id %q", ErrInvalidURI, id),
		}
	}

	return docType, id, nil
}

func isKnownType(docType DocumentType) bool {
	for _, t := range DocumentTypes {
		if t == docType {
			return true
		}
	}
	return false
}

// SaveDocument stores content under its SHA-256 id and returns the URI.
// Saving identical content twice returns the existing URI.
func (sm *StorageManager) SaveDocument(docType DocumentType, content []byte, name string) (string, error) {
	if !json.Valid(content) {
		return "", &StorageError{
			Operation: "save document",
			Err:       fmt.Errorf("content of %s is not valid JSON", docType),
		}
	}

	id := GenerateID(content)
	path := sm.documentPath(docType, id)

	if _, err := sm.fs.Stat(path); err == nil {
		sm.logger.Debug("document already exists (deduplication)",
			"doc_type", docType,
			"id", id,
			"path", path,
		)
		return BuildURI(docType, id), nil
	}

	return sm.write(docType, id, name, content)
}

// SaveReport stores an assessment report under a fresh random id.
// Reports are never deduplicated: the same inputs assessed twice yield two reports.
func (sm *StorageManager) SaveReport(report any) (string, error) {
	content, err := json.Marshal(report)
	if err != nil {
		return "", &StorageError{
			Operation: "encode report",
			Err:       err,
		}
	}
	return sm.write(DocumentTypeReport, uuid.NewString(), "", content)
}

func (sm *StorageManager) write(docType DocumentType, id, name string, content []byte) (string, error) {
	path := sm.documentPath(docType, id)

	envelope, err := json.MarshalIndent(Document{
		Metadata: Metadata{
			ID:       id,
			Type:     docType,
			Name:     name,
			StoredAt: sm.now().UTC(),
		},
		Content: content,
	}, "", "  ")
	if err != nil {
		return "", &StorageError{
			Operation: "encode document",
			Path:      path,
			Err:       err,
		}
	}

	if err := sm.fs.WriteFile(path, envelope, 0644); err != nil {
		sm.logger.Error("failed to save document",
			"error", err,
			"doc_type", docType,
			"id", id,
			"path", path,
			"operation", "save",
		)
		return "", &StorageError{
			Operation: "save document",
			Path:      path,
			Err:       err,
		}
	}

	sm.logger.Info("document saved",
		"doc_type", docType,
		"id", id,
		"path", path,
		"name", name,
	)

	return BuildURI(docType, id), nil
}

func (sm *StorageManager) documentPath(docType DocumentType, id string) string {
	return filepath.Join(sm.GetPath(docType), id+documentExt)
}

// GetDocumentPath returns the file path for a given URI
func (sm *StorageManager) GetDocumentPath(uri string) (string, error) {
	docType, id, err := ParseURI(uri)
	if err != nil {
		return "", err
	}

	path := sm.documentPath(docType, id)
	if _, err := sm.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &StorageError{
				Operation: "find document",
				Path:      path,
				Err:       fmt.Errorf("%w: %s", ErrNotFound, uri),
			}
		}
		return "", &StorageError{
			Operation: "find document",
			Path:      path,
			Err:       err,
		}
	}
	return path, nil
}

// ReadEnvelope reads the full stored document including metadata
func (sm *StorageManager) ReadEnvelope(uri string) (*Document, error) {
	path, err := sm.GetDocumentPath(uri)
	if err != nil {
		sm.logger.Debug("failed to resolve document",
			"error", err,
			"uri", uri,
			"operation", "read",
		)
		return nil, err
	}

	raw, err := sm.fs.ReadFile(path)
	if err != nil {
		sm.logger.Error("failed to read document",
			"error", err,
			"path", path,
			"uri", uri,
			"operation", "read",
		)
		return nil, &StorageError{
			Operation: "read document",
			Path:      path,
			Err:       err,
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &StorageError{
			Operation: "decode document",
			Path:      path,
			Err:       err,
		}
	}
	return &doc, nil
}

// ReadDocument reads the JSON payload stored at uri
func (sm *StorageManager) ReadDocument(uri string) ([]byte, error) {
	doc, err := sm.ReadEnvelope(uri)
	if err != nil {
		return nil, err
	}
	sm.logger.Debug("document read", "uri", uri)
	return doc.Content, nil
}

// ReadInto decodes the payload stored at uri into v
func (sm *StorageManager) ReadInto(uri string, v any) error {
	content, err := sm.ReadDocument(uri)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return &StorageError{
			Operation: "decode content",
			Path:      uri,
			Err:       err,
		}
	}
	return nil
}

// DocumentExists checks if a document exists in storage
func (sm *StorageManager) DocumentExists(uri string) bool {
	_, err := sm.GetDocumentPath(uri)
	return err == nil
}

// Cleanup removes documents older than ttl; zero uses the default TTL
func (sm *StorageManager) Cleanup(ttl time.Duration) (int64, error) {
	if ttl == 0 {
		ttl = sm.defaultTTL
	}

	cutoff := sm.now().Add(-ttl)
	var removed int64

	for _, docType := range DocumentTypes {
		dir := sm.GetPath(docType)
		entries, err := sm.fs.ReadDir(dir)
		if err != nil {
			sm.logger.Error("failed to read directory for cleanup",
				"error", err,
				"dir", dir,
				"doc_type", docType,
			)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.ModTime().Before(cutoff) {
				if err := sm.fs.Remove(filepath.Join(dir, entry.Name())); err == nil {
					removed++
				}
			}
		}
	}

	sm.logger.Info("storage cleanup completed",
		"removed", removed,
		"ttl", ttl,
	)

	return removed, nil
}

// GetStorageStats returns the number of stored documents per type
func (sm *StorageManager) GetStorageStats() (map[DocumentType]int64, error) {
	ids, err := sm.ListAllDocuments()
	if err != nil {
		return nil, err
	}

	stats := make(map[DocumentType]int64, len(DocumentTypes))
	for _, docType := range DocumentTypes {
		stats[docType] = int64(len(ids[docType]))
	}
	return stats, nil
}

// IsAccessible checks if storage is accessible and directories exist
func (sm *StorageManager) IsAccessible() bool {
	if _, err := sm.fs.Stat(sm.basePath); err != nil {
		return false
	}
	for _, docType := range DocumentTypes {
		if _, err := sm.fs.Stat(sm.GetPath(docType)); err != nil {
			return false
		}
	}
	return true
}

// ListAllDocuments returns the sorted ids of all stored documents by type
func (sm *StorageManager) ListAllDocuments() (map[DocumentType][]string, error) {
	result := make(map[DocumentType][]string, len(DocumentTypes))

	for _, docType := range DocumentTypes {
		dir := sm.GetPath(docType)
		entries, err := sm.fs.ReadDir(dir)
		if err != nil {
			sm.logger.Error("failed to read directory for listing",
				"error", err,
				"dir", dir,
				"doc_type", docType,
			)
			return nil, &StorageError{
				Operation: "list documents",
				Path:      dir,
				Err:       err,
			}
		}

		ids := []string{}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || filepath.Ext(name) != documentExt {
				continue
			}
			ids = append(ids, strings.TrimSuffix(name, documentExt))
		}
		sort.Strings(ids)
		result[docType] = ids
	}

	return result, nil
}
