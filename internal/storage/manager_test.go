package storage

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basePath = "/test-storage"

func newTestManager(t *testing.T) (*StorageManager, FileSystem) {
	t.Helper()
	fs := NewMemMapFileSystem()
	sm, err := NewStorageManager(StorageConfig{
		BasePath:   basePath,
		DefaultTTL: time.Hour,
		FileSystem: fs,
	})
	require.NoError(t, err)
	return sm, fs
}

func TestStorageManager_NewStorageManager(t *testing.T) {
	t.Run("uses provided config values", func(t *testing.T) {
		sm, fs := newTestManager(t)

		assert.Equal(t, basePath, sm.basePath)
		assert.Equal(t, time.Hour, sm.DefaultTTL())
		assert.NotNil(t, sm.logger)

		for _, docType := range DocumentTypes {
			info, err := fs.Stat(sm.GetPath(docType))
			require.NoError(t, err, docType)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		sm, err := NewStorageManager(StorageConfig{FileSystem: NewMemMapFileSystem()})
		require.NoError(t, err)

		assert.Equal(t, "./storage", sm.basePath)
		assert.Equal(t, 24*time.Hour, sm.DefaultTTL())
	})

	t.Run("fails on read-only filesystem", func(t *testing.T) {
		_, err := NewStorageManager(StorageConfig{
			BasePath:   basePath,
			FileSystem: NewAferoFileSystem(afero.NewReadOnlyFs(afero.NewMemMapFs())),
		})
		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.Equal(t, "init - create directory", storageErr.Operation)
	})
}

func TestStorageManager_IsAccessible(t *testing.T) {
	t.Run("accessible when all directories exist", func(t *testing.T) {
		sm, _ := newTestManager(t)
		assert.True(t, sm.IsAccessible())
	})

	t.Run("inaccessible after removing base path", func(t *testing.T) {
		sm, fs := newTestManager(t)
		require.NoError(t, fs.RemoveAll(basePath))
		assert.False(t, sm.IsAccessible())
	})

	t.Run("inaccessible after removing one type directory", func(t *testing.T) {
		sm, fs := newTestManager(t)
		require.NoError(t, fs.RemoveAll(sm.GetPath(DocumentTypeInterview)))
		assert.False(t, sm.IsAccessible())
	})
}

func TestStorageManager_SaveDocument(t *testing.T) {
	t.Run("saves and deduplicates by content", func(t *testing.T) {
		sm, _ := newTestManager(t)
		content := []byte(`{"id":"c1","name":"Ada"}`)

		uri, err := sm.SaveDocument(DocumentTypeCandidate, content, "ada.json")
		require.NoError(t, err)
		assert.Equal(t, "candidate://"+GenerateID(content), uri)

		again, err := sm.SaveDocument(DocumentTypeCandidate, content, "other-name.json")
		require.NoError(t, err)
		assert.Equal(t, uri, again)

		doc, err := sm.ReadEnvelope(uri)
		require.NoError(t, err)
		assert.Equal(t, "ada.json", doc.Metadata.Name)
		assert.Equal(t, DocumentTypeCandidate, doc.Metadata.Type)
		assert.Equal(t, uri, doc.URI())
	})

	t.Run("rejects non-JSON content", func(t *testing.T) {
		sm, _ := newTestManager(t)
		_, err := sm.SaveDocument(DocumentTypeJob, []byte("not json"), "job.txt")
		assert.Error(t, err)
	})
}

func TestStorageManager_SaveReport(t *testing.T) {
	sm, _ := newTestManager(t)
	report := map[string]any{"overall_score": 72.5}

	first, err := sm.SaveReport(report)
	require.NoError(t, err)
	second, err := sm.SaveReport(report)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "report://"))
	assert.NotEqual(t, first, second)

	var decoded map[string]any
	require.NoError(t, sm.ReadInto(first, &decoded))
	assert.Equal(t, 72.5, decoded["overall_score"])
}

func TestStorageManager_ReadDocument(t *testing.T) {
	t.Run("returns the stored payload", func(t *testing.T) {
		sm, _ := newTestManager(t)
		content := []byte(`{"title":"Backend Engineer"}`)
		uri, err := sm.SaveDocument(DocumentTypeJob, content, "")
		require.NoError(t, err)

		read, err := sm.ReadDocument(uri)
		require.NoError(t, err)
		assert.JSONEq(t, string(content), string(read))
	})

	t.Run("missing document", func(t *testing.T) {
		sm, _ := newTestManager(t)
		_, err := sm.ReadDocument("job://" + GenerateID([]byte("nothing")))
		require.ErrorIs(t, err, ErrNotFound)

		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.False(t, storageErr.IsRetryable())
	})

	t.Run("corrupt envelope", func(t *testing.T) {
		sm, fs := newTestManager(t)
		require.NoError(t, fs.WriteFile(sm.documentPath(DocumentTypeJob, "broken"), []byte("{"), 0644))

		_, err := sm.ReadDocument("job://broken")
		assert.Error(t, err)
	})

	t.Run("ReadInto rejects mismatched shape", func(t *testing.T) {
		sm, _ := newTestManager(t)
		uri, err := sm.SaveDocument(DocumentTypeInterview, []byte(`{"a":1}`), "")
		require.NoError(t, err)

		var list []string
		assert.Error(t, sm.ReadInto(uri, &list))
	})
}

func TestStorageManager_DocumentExists(t *testing.T) {
	sm, _ := newTestManager(t)
	uri, err := sm.SaveDocument(DocumentTypeCandidate, []byte(`{}`), "")
	require.NoError(t, err)

	assert.True(t, sm.DocumentExists(uri))
	assert.False(t, sm.DocumentExists("candidate://missing"))
	assert.False(t, sm.DocumentExists("bogus"))
}

func TestStorageManager_ListAllDocumentsAndStats(t *testing.T) {
	sm, _ := newTestManager(t)

	_, err := sm.SaveDocument(DocumentTypeCandidate, []byte(`{"n":1}`), "")
	require.NoError(t, err)
	_, err = sm.SaveDocument(DocumentTypeCandidate, []byte(`{"n":2}`), "")
	require.NoError(t, err)
	_, err = sm.SaveDocument(DocumentTypeJob, []byte(`{"n":3}`), "")
	require.NoError(t, err)
	_, err = sm.SaveReport(map[string]int{"n": 4})
	require.NoError(t, err)

	docs, err := sm.ListAllDocuments()
	require.NoError(t, err)
	assert.Len(t, docs[DocumentTypeCandidate], 2)
	assert.Len(t, docs[DocumentTypeJob], 1)
	assert.Empty(t, docs[DocumentTypeInterview])
	assert.Len(t, docs[DocumentTypeReport], 1)
	assert.IsIncreasing(t, docs[DocumentTypeCandidate])

	stats, err := sm.GetStorageStats()
	require.NoError(t, err)
	assert.Equal(t, map[DocumentType]int64{
		DocumentTypeCandidate: 2,
		DocumentTypeJob:       1,
		DocumentTypeInterview: 0,
		DocumentTypeReport:    1,
	}, stats)
}

func TestStorageManager_ListAllDocuments_MissingDirectory(t *testing.T) {
	sm, fs := newTestManager(t)
	require.NoError(t, fs.RemoveAll(sm.GetPath(DocumentTypeJob)))

	_, err := sm.ListAllDocuments()
	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri     string
		docType DocumentType
		id      string
		wantErr bool
	}{
		{"candidate://abc", DocumentTypeCandidate, "abc", false},
		{"job://abc", DocumentTypeJob, "abc", false},
		{"interview://abc", DocumentTypeInterview, "abc", false},
		{"report://6f1c", DocumentTypeReport, "6f1c", false},
		{"cv://abc", "", "", true},
		{"candidate://", "", "", true},
		{"candidate://../etc/passwd", "", "", true},
		{"job://a/b", "", "", true},
		{"no-scheme", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			docType, id, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.docType, docType)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID([]byte("same"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, GenerateID([]byte("same")))
	assert.NotEqual(t, a, GenerateID([]byte("different")))
}

func TestStorageError(t *testing.T) {
	err := &StorageError{Operation: "save document", Path: "/p/x.json", Err: os.ErrPermission}

	assert.Contains(t, err.Error(), "save document")
	assert.Contains(t, err.Error(), "/p/x.json")
	assert.Equal(t, os.ErrPermission, err.Unwrap())
	assert.True(t, err.IsRetryable())
	assert.False(t, (&StorageError{Err: ErrInvalidURI}).IsRetryable())
}

func TestStorageManager_Cleanup(t *testing.T) {
	t.Run("removes documents older than ttl", func(t *testing.T) {
		sm, _ := newTestManager(t)
		_, err := sm.SaveDocument(DocumentTypeCandidate, []byte(`{"old":true}`), "")
		require.NoError(t, err)
		_, err = sm.SaveReport(map[string]bool{"old": true})
		require.NoError(t, err)

		sm.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		removed, err := sm.Cleanup(0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		stats, err := sm.GetStorageStats()
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats[DocumentTypeCandidate])
	})

	t.Run("keeps fresh documents", func(t *testing.T) {
		sm, _ := newTestManager(t)
		_, err := sm.SaveDocument(DocumentTypeJob, []byte(`{"fresh":true}`), "")
		require.NoError(t, err)

		removed, err := sm.Cleanup(time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)
	})
}

func TestDocument_JSONShape(t *testing.T) {
	sm, fs := newTestManager(t)
	uri, err := sm.SaveDocument(DocumentTypeJob, []byte(`{"title":"SRE"}`), "sre.json")
	require.NoError(t, err)

	path, err := sm.GetDocumentPath(uri)
	require.NoError(t, err)
	raw, err := fs.ReadFile(path)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Contains(t, envelope, "metadata")
	assert.JSONEq(t, `{"title":"SRE"}`, string(envelope["content"]))
}
