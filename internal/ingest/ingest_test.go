package ingest

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfreiman/hirecheck/internal/assessment"
	"github.com/kfreiman/hirecheck/internal/storage"
)

func newTestIngestor(t *testing.T) (*DocumentIngestor, *storage.StorageManager, afero.Fs) {
	t.Helper()

	sm, err := storage.NewStorageManager(storage.StorageConfig{
		BasePath:   "/test-storage",
		FileSystem: storage.NewMemMapFileSystem(),
	})
	require.NoError(t, err)

	source := afero.NewMemMapFs()
	ingestor := NewIngestorWithConfig(IngestorConfig{
		StorageManager: sm,
		Source:         source,
		Retry:          &RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond},
	})
	return ingestor, sm, source
}

const candidateJSON = `{
	"id": "cand-7",
	"name": "Jane Roe",
	"email": "jane@example.com",
	"resume_text": "Reach me at jane@example.com or 555-123-4567. Built Go services for 6 years.",
	"extracted_skills": {"all_skills": ["Go", "SQL"]},
	"extracted_experience": {"total_years": 6, "experience_level": "mid", "employment_gaps": [[2019, 2020]]},
	"extracted_education": {"education_level": "bachelors"}
}`

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		shouldErr bool
	}{
		{name: "valid relative path", path: "candidate.json"},
		{name: "valid path with subdirectory", path: "docs/job.json"},
		{name: "path traversal attempt", path: "../../../etc/passwd", shouldErr: true},
		{name: "path with null byte", path: "job.json\x00malicious", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.shouldErr {
				var secErr *SecurityError
				assert.ErrorAs(t, err, &secErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentIngestor_IngestCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("redacts resume text and keeps structured fields", func(t *testing.T) {
		ingestor, sm, _ := newTestIngestor(t)

		uri, err := ingestor.Ingest(ctx, candidateJSON, storage.DocumentTypeCandidate)
		require.NoError(t, err)
		assert.Contains(t, uri, "candidate://")

		var profile assessment.CandidateProfile
		require.NoError(t, sm.ReadInto(uri, &profile))
		assert.Equal(t, "cand-7", profile.ID)
		assert.Equal(t, "jane@example.com", profile.Email)
		assert.NotContains(t, profile.ResumeText, "jane@example.com")
		assert.NotContains(t, profile.ResumeText, "555-123-4567")
		assert.Contains(t, profile.ResumeText, "Built Go services for 6 years.")
		assert.Equal(t, []assessment.EmploymentGap{{2019, 2020}}, profile.Experience.EmploymentGaps)
	})

	t.Run("equivalent documents deduplicate", func(t *testing.T) {
		ingestor, sm, _ := newTestIngestor(t)

		first, err := ingestor.Ingest(ctx, candidateJSON, storage.DocumentTypeCandidate)
		require.NoError(t, err)
		second, err := ingestor.Ingest(ctx, "  \n"+candidateJSON+"\n", storage.DocumentTypeCandidate)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		stats, err := sm.GetStorageStats()
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats[storage.DocumentTypeCandidate])
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		ingestor, _, _ := newTestIngestor(t)

		_, err := ingestor.Ingest(ctx, `{"id": "x", "email": "not-an-email"}`, storage.DocumentTypeCandidate)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "CandidateProfile.Email", valErr.Field)
		assert.Equal(t, "not-an-email", valErr.Value)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		ingestor, _, _ := newTestIngestor(t)

		_, err := ingestor.Ingest(ctx, `{"id": `, storage.DocumentTypeCandidate)

		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestDocumentIngestor_IngestJob(t *testing.T) {
	ctx := context.Background()

	t.Run("reads from file source", func(t *testing.T) {
		ingestor, sm, source := newTestIngestor(t)
		require.NoError(t, afero.WriteFile(source, "/in/backend.json",
			[]byte(`{"id": "job-1", "title": "Backend Engineer", "required_skills": ["Go"], "experience_level": "senior"}`), 0644))

		uri, err := ingestor.Ingest(ctx, "/in/backend.json", storage.DocumentTypeJob)
		require.NoError(t, err)

		doc, err := sm.ReadEnvelope(uri)
		require.NoError(t, err)
		assert.Equal(t, "backend.json", doc.Metadata.Name)

		var job assessment.JobRequirement
		require.NoError(t, sm.ReadInto(uri, &job))
		assert.Equal(t, assessment.LevelSenior, job.ExperienceLevel)
		assert.Equal(t, []string{"Go"}, job.RequiredSkills)
	})

	t.Run("rejects unknown experience level", func(t *testing.T) {
		ingestor, _, _ := newTestIngestor(t)

		_, err := ingestor.Ingest(ctx, `{"title": "X", "experience_level": "guru"}`, storage.DocumentTypeJob)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "JobRequirement.ExperienceLevel", valErr.Field)
	})

	t.Run("missing file is not retried", func(t *testing.T) {
		ingestor, _, _ := newTestIngestor(t)

		_, err := ingestor.Ingest(ctx, "/in/missing.json", storage.DocumentTypeJob)

		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		var retryErr *RetryableError
		assert.False(t, errors.As(err, &retryErr))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		ingestor, _, _ := newTestIngestor(t)

		_, err := ingestor.Ingest(ctx, "../secrets.json", storage.DocumentTypeJob)

		var secErr *SecurityError
		require.ErrorAs(t, err, &secErr)
		assert.Equal(t, "path_traversal", secErr.Type)
	})
}

func TestDocumentIngestor_IngestInterview(t *testing.T) {
	ingestor, sm, _ := newTestIngestor(t)

	uri, err := ingestor.Ingest(context.Background(), `{"candidate_id": "cand-7"}`, storage.DocumentTypeInterview)
	require.NoError(t, err)

	raw, err := sm.ReadDocument(uri)
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidate_id": "cand-7", "responses": []}`, string(raw))
}

func TestDocumentIngestor_InvalidInput(t *testing.T) {
	ingestor, _, _ := newTestIngestor(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		source  string
		docType storage.DocumentType
	}{
		{name: "unsupported type", source: candidateJSON, docType: "cv"},
		{name: "report type is not ingestible", source: `{}`, docType: storage.DocumentTypeReport},
		{name: "empty source", source: "   ", docType: storage.DocumentTypeJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingestor.Ingest(ctx, tt.source, tt.docType)
			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}
