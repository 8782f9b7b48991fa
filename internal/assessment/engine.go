// Package assessment turns an extracted candidate profile, a job requirement and
// optional interview evaluations into a scored hiring recommendation.
package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kfreiman/hirecheck/internal/textmatch"
)

// TermAnalyzer compares the free text of a resume and a job description.
// Its result is informational and never affects the score.
type TermAnalyzer interface {
	Analyze(ctx context.Context, resumeText, jobText string) (*textmatch.Result, error)
}

// Engine runs the scoring pipeline. It holds no per-assessment state and is safe for concurrent use.
type Engine struct {
	config       Config
	matcher      *SkillMatcher
	termAnalyzer TermAnalyzer
	now          func() time.Time
	logger       *slog.Logger
}

// NewEngine creates an engine over a validated configuration
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		config:  config,
		matcher: NewSkillMatcher(config.SkillSynonyms),
		now:     time.Now,
		logger:  slog.Default(),
	}, nil
}

// NewDefaultEngine creates an engine with DefaultConfig
func NewDefaultEngine() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default assessment config is invalid: %v", err))
	}
	return e
}

// WithLogger sets a custom logger
func (e *Engine) WithLogger(logger *slog.Logger) *Engine {
	e.logger = logger
	return e
}

// WithClock sets the clock used for report timestamps
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// WithTermAnalyzer enables term overlap reporting in the role alignment analysis
func (e *Engine) WithTermAnalyzer(analyzer TermAnalyzer) *Engine {
	e.termAnalyzer = analyzer
	return e
}

// Config returns the tables the engine scores with
func (e *Engine) Config() Config {
	return e.config
}

// Assess scores a candidate against a job. It never fails: any internal error or panic
// yields FallbackReport. A nil or empty responses slice means no interview took place.
func (e *Engine) Assess(ctx context.Context, profile CandidateProfile, job JobRequirement, responses []InterviewResponse) (report *Report) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.ErrorContext(ctx, "assessment panicked, returning fallback report",
				"candidate_id", profile.ID,
				"job_id", job.ID,
				"panic", fmt.Sprint(r),
			)
			report = e.fallback(profile, job)
		}
	}()

	report, err := e.assess(ctx, &profile, &job, responses)
	if err != nil {
		e.logger.ErrorContext(ctx, "assessment failed, returning fallback report",
			"candidate_id", profile.ID,
			"job_id", job.ID,
			"error", err,
		)
		return e.fallback(profile, job)
	}
	return report
}

func (e *Engine) fallback(profile CandidateProfile, job JobRequirement) *Report {
	report := FallbackReport()
	report.CandidateID = profile.ID
	report.JobID = job.ID
	report.AssessmentTimestamp = e.timestamp()
	return report
}

func (e *Engine) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}

func (e *Engine) assess(ctx context.Context, profile *CandidateProfile, job *JobRequirement, responses []InterviewResponse) (*Report, error) {
	scores := make(map[Component]ComponentScore, len(componentOrder))

	scores[ComponentResumeAnalysis] = e.scoreResume(profile)

	skills := e.scoreSkillMatch(profile, job)
	scores[ComponentSkillMatch] = skills.ComponentScore

	experience := e.scoreExperience(profile, job)
	scores[ComponentExperienceRelevance] = experience.ComponentScore

	var interview *InterviewScore
	hasInterview := len(responses) > 0
	if hasInterview {
		s := e.scoreInterview(responses)
		interview = &s
		scores[ComponentInterviewPerformance] = s.ComponentScore
	}

	overall, err := e.overallScore(scores)
	if err != nil {
		return nil, fmt.Errorf("overall score: %w", err)
	}

	culturalFit := e.estimateCulturalFit(profile, responses)
	detailed := e.detailedAnalysis(ctx, profile, job, scores, culturalFit)
	scores[ComponentCulturalFit] = culturalFit

	risks := e.detectRisks(profile, &skills, &experience, interview)
	strengths, development := e.highlights(scores)

	report := &Report{
		CandidateID:          profile.ID,
		JobID:                job.ID,
		AssessmentTimestamp:  e.timestamp(),
		OverallScore:         overall,
		ComponentScores:      scores,
		DetailedAnalysis:     detailed,
		Recommendations:      e.recommendations(overall, scores),
		RiskFactors:          risks,
		Strengths:            strengths,
		DevelopmentAreas:     development,
		HiringRecommendation: e.hiringRecommendation(overall, risks),
		ConfidenceLevel:      e.confidenceLevel(scores, hasInterview),
	}

	e.logger.DebugContext(ctx, "assessment complete",
		"candidate_id", report.CandidateID,
		"job_id", report.JobID,
		"overall_score", report.OverallScore,
		"hiring_recommendation", report.HiringRecommendation,
		"risk_factors", len(report.RiskFactors),
		"confidence_level", report.ConfidenceLevel,
	)
	return report, nil
}
