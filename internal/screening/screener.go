// Package screening loads stored candidate, job and interview documents, runs the assessment
// engine over them and persists the resulting reports.
package screening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kfreiman/hirecheck/internal/assessment"
	"github.com/kfreiman/hirecheck/internal/storage"
)

// DefaultConcurrency bounds AssessBatch when the caller passes a non-positive limit
const DefaultConcurrency = 4

// ErrCandidateMismatch is returned when an interview session belongs to another candidate
var ErrCandidateMismatch = errors.New("interview session belongs to a different candidate")

// Request names the stored documents of one assessment; InterviewURI is optional
type Request struct {
	CandidateURI string `json:"candidate_uri"`
	JobURI       string `json:"job_uri"`
	InterviewURI string `json:"interview_uri,omitempty"`
}

// Outcome is a persisted assessment report
type Outcome struct {
	ReportURI string             `json:"report_uri"`
	Report    *assessment.Report `json:"report"`
}

// BatchItem is the result for one candidate of a batch; exactly one of Outcome and Error is set
type BatchItem struct {
	CandidateURI string   `json:"candidate_uri"`
	Outcome      *Outcome `json:"outcome,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Screener runs assessments over documents held by a StorageManager
type Screener struct {
	engine  *assessment.Engine
	storage *storage.StorageManager
	logger  *slog.Logger
}

// NewScreener creates a screener
func NewScreener(engine *assessment.Engine, storageManager *storage.StorageManager) *Screener {
	return &Screener{
		engine:  engine,
		storage: storageManager,
		logger:  slog.Default(),
	}
}

// WithLogger sets a custom logger for the screener
func (s *Screener) WithLogger(logger *slog.Logger) *Screener {
	s.logger = logger
	return s
}

// Assess loads the documents named by req, assesses them and stores the report
func (s *Screener) Assess(ctx context.Context, req Request) (*Outcome, error) {
	var job assessment.JobRequirement
	if err := s.storage.ReadInto(req.JobURI, &job); err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	return s.assess(ctx, req, job)
}

func (s *Screener) assess(ctx context.Context, req Request, job assessment.JobRequirement) (*Outcome, error) {
	var profile assessment.CandidateProfile
	if err := s.storage.ReadInto(req.CandidateURI, &profile); err != nil {
		return nil, fmt.Errorf("load candidate: %w", err)
	}

	var responses []assessment.InterviewResponse
	if req.InterviewURI != "" {
		var session assessment.InterviewSession
		if err := s.storage.ReadInto(req.InterviewURI, &session); err != nil {
			return nil, fmt.Errorf("load interview: %w", err)
		}
		if session.CandidateID != "" && profile.ID != "" && session.CandidateID != profile.ID {
			return nil, fmt.Errorf("%w: session %q, candidate %q", ErrCandidateMismatch, session.CandidateID, profile.ID)
		}
		responses = session.Responses
	}

	report := s.engine.Assess(ctx, profile, job, responses)

	uri, err := s.storage.SaveReport(report)
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	s.logger.InfoContext(ctx, "assessment completed",
		"candidate_uri", req.CandidateURI,
		"job_uri", req.JobURI,
		"report_uri", uri,
		"overall_score", report.OverallScore,
		"recommendation", report.HiringRecommendation,
		"fallback", report.IsFallback(),
	)

	return &Outcome{ReportURI: uri, Report: report}, nil
}

// AssessBatch assesses every candidate against one job with at most concurrency assessments in flight.
// Results keep the order of candidateURIs; a candidate that cannot be loaded is reported in its item
// and does not stop the batch. The returned error is set only when the job cannot be loaded or ctx ends.
func (s *Screener) AssessBatch(ctx context.Context, jobURI string, candidateURIs []string, concurrency int) ([]BatchItem, error) {
	var job assessment.JobRequirement
	if err := s.storage.ReadInto(jobURI, &job); err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	items := make([]BatchItem, len(candidateURIs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for idx, candidateURI := range candidateURIs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item := BatchItem{CandidateURI: candidateURI}
			outcome, err := s.assess(gctx, Request{CandidateURI: candidateURI, JobURI: jobURI}, job)
			if err != nil {
				s.logger.WarnContext(gctx, "batch assessment failed",
					"candidate_uri", candidateURI,
					"error", err,
				)
				item.Error = err.Error()
			} else {
				item.Outcome = outcome
			}
			items[idx] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "batch assessment completed",
		"job_uri", jobURI,
		"candidates", len(candidateURIs),
		"concurrency", concurrency,
	)
	return items, nil
}
