package assessment

import (
	"encoding/json"
	"fmt"
)

// Component names a scored dimension of an assessment
type Component string

const (
	ComponentResumeAnalysis       Component = "resume_analysis"
	ComponentSkillMatch           Component = "skill_match"
	ComponentExperienceRelevance  Component = "experience_relevance"
	ComponentInterviewPerformance Component = "interview_performance"
	ComponentCulturalFit          Component = "cultural_fit"
)

// componentOrder is the canonical iteration order for strengths, development plans and summaries
var componentOrder = []Component{
	ComponentResumeAnalysis,
	ComponentSkillMatch,
	ComponentExperienceRelevance,
	ComponentInterviewPerformance,
	ComponentCulturalFit,
}

// EducationLevel is the highest degree level found on a resume
type EducationLevel string

const (
	EducationDoctorate  EducationLevel = "doctorate"
	EducationMasters    EducationLevel = "masters"
	EducationBachelors  EducationLevel = "bachelors"
	EducationAssociates EducationLevel = "associates"
	EducationHighSchool EducationLevel = "high_school"
)

// ExperienceLevel is the seniority a job is hiring for
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// CandidateProfile is the structured output of resume extraction
type CandidateProfile struct {
	ID         string        `json:"id" validate:"omitempty,max=256"`
	Name       string        `json:"name,omitempty"`
	Email      string        `json:"email,omitempty" validate:"omitempty,email"`
	ResumeText string        `json:"resume_text,omitempty"`
	Skills     SkillSet      `json:"extracted_skills"`
	Experience Experience    `json:"extracted_experience"`
	Education  EducationInfo `json:"extracted_education"`
}

// SkillSet holds categorized technical skills, soft skills and the flattened list
type SkillSet struct {
	TechnicalSkills map[string][]string `json:"technical_skills,omitempty"`
	SoftSkills      []string            `json:"soft_skills,omitempty"`
	AllSkills       []string            `json:"all_skills,omitempty"`
}

// Experience summarizes a candidate's work history
type Experience struct {
	TotalYears        float64           `json:"total_years" validate:"gte=0"`
	ExperienceLevel   ExperienceLevel   `json:"experience_level,omitempty"`
	JobTitles         []string          `json:"job_titles,omitempty"`
	Companies         []string          `json:"companies,omitempty"`
	EmploymentGaps    []EmploymentGap   `json:"employment_gaps,omitempty"`
	CareerProgression CareerProgression `json:"career_progression"`
	Responsibilities  []string          `json:"responsibilities,omitempty"`
}

// CareerProgression carries growth indicators derived from job titles
type CareerProgression struct {
	ShowsGrowth           bool `json:"shows_growth"`
	LeadershipProgression bool `json:"leadership_progression"`
	TechnicalProgression  bool `json:"technical_progression"`
	ProgressionScore      int  `json:"progression_score"`
}

// EmploymentGap is a (start_year, end_year) interval without employment.
// It is encoded as a two element JSON array.
type EmploymentGap struct {
	Start float64
	End   float64
}

// Years returns the length of the gap
func (g EmploymentGap) Years() float64 {
	return g.End - g.Start
}

// MarshalJSON encodes the gap as [start, end]
func (g EmploymentGap) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{g.Start, g.End})
}

// UnmarshalJSON decodes a [start, end] pair
func (g *EmploymentGap) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("employment gap must be a [start, end] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("employment gap must have 2 elements, got %d", len(pair))
	}
	g.Start, g.End = pair[0], pair[1]
	return nil
}

// EducationInfo is the education section of a profile
type EducationInfo struct {
	Degrees        []string       `json:"degrees,omitempty"`
	EducationLevel EducationLevel `json:"education_level,omitempty"`
}

// JobRequirement describes the position a candidate is assessed against
type JobRequirement struct {
	ID              string          `json:"id,omitempty" validate:"omitempty,max=256"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	RequiredSkills  []string        `json:"required_skills,omitempty"`
	PreferredSkills []string        `json:"preferred_skills,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior executive"`
}

// InterviewQuestion is the metadata of a generated question
type InterviewQuestion struct {
	Text       string `json:"question,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// EvaluationScores are the six named sub-scores of an evaluated answer.
// A nil field was not reported by the evaluator.
type EvaluationScores struct {
	TechnicalAccuracy      *float64 `json:"technical_accuracy,omitempty"`
	CommunicationClarity   *float64 `json:"communication_clarity,omitempty"`
	ProblemSolvingApproach *float64 `json:"problem_solving_approach,omitempty"`
	ExperienceRelevance    *float64 `json:"experience_relevance,omitempty"`
	CulturalAlignment      *float64 `json:"cultural_alignment,omitempty"`
	GrowthPotential        *float64 `json:"growth_potential,omitempty"`
}

// Evaluation is the completed evaluation attached to an interview response
type Evaluation struct {
	Scores               *EvaluationScores `json:"scores,omitempty"`
	OverallScore         float64           `json:"overall_score"`
	Strengths            []string          `json:"strengths,omitempty"`
	AreasForImprovement  []string          `json:"areas_for_improvement,omitempty"`
	Feedback             string            `json:"feedback,omitempty"`
	Recommendation       string            `json:"recommendation,omitempty"`
}

// InterviewResponse is one question/answer record of an interview session
type InterviewResponse struct {
	Question     InterviewQuestion `json:"question"`
	ResponseText string            `json:"response_text,omitempty"`
	Evaluation   Evaluation        `json:"evaluation"`
}

// InterviewSession is the stored form of one candidate's interview responses
type InterviewSession struct {
	CandidateID string              `json:"candidate_id,omitempty" validate:"omitempty,max=256"`
	Responses   []InterviewResponse `json:"responses" validate:"dive"`
}

// ComponentScore is the 0-100 result of a single scorer
type ComponentScore struct {
	OverallScore float64            `json:"overall_score"`
	SubScores    map[string]float64 `json:"component_scores,omitempty"`
	Analysis     map[string]any     `json:"analysis,omitempty"`
}

// RiskType classifies a risk factor
type RiskType string

const (
	RiskEmploymentGap        RiskType = "employment_gap"
	RiskSkillGap             RiskType = "skill_gap"
	RiskOverqualification    RiskType = "overqualification"
	RiskInterviewPerformance RiskType = "interview_performance"
	RiskTechnicalError       RiskType = "technical_error"
)

// Severity of a risk factor
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskFactor is a condition that should be discussed before hiring
type RiskFactor struct {
	Type        RiskType `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Mitigation  string   `json:"mitigation"`
}

// HiringRecommendation is the final decision label
type HiringRecommendation string

const (
	RecommendStrongHire   HiringRecommendation = "strong_hire"
	RecommendHire         HiringRecommendation = "hire"
	RecommendMaybe        HiringRecommendation = "maybe"
	RecommendNoHire       HiringRecommendation = "no_hire"
	RecommendManualReview HiringRecommendation = "manual_review"
)

// Recommendations is the actionable bundle attached to a report
type Recommendations struct {
	HiringDecision    string   `json:"hiring_decision"`
	NextSteps         []string `json:"next_steps"`
	DevelopmentPlan   []string `json:"development_plan"`
	OnboardingFocus   []string `json:"onboarding_focus"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

// Report is the terminal aggregate of one assessment
type Report struct {
	CandidateID          string                       `json:"candidate_id,omitempty"`
	JobID                string                       `json:"job_id,omitempty"`
	AssessmentTimestamp  string                       `json:"assessment_timestamp,omitempty"`
	OverallScore         float64                      `json:"overall_score"`
	ComponentScores      map[Component]ComponentScore `json:"component_scores"`
	DetailedAnalysis     map[string]any               `json:"detailed_analysis"`
	Recommendations      Recommendations              `json:"recommendations"`
	RiskFactors          []RiskFactor                 `json:"risk_factors"`
	Strengths            []string                     `json:"strengths"`
	DevelopmentAreas     []string                     `json:"development_areas"`
	HiringRecommendation HiringRecommendation         `json:"hiring_recommendation"`
	ConfidenceLevel      float64                      `json:"confidence_level"`
}

// IsFallback reports whether the report is the manual-review fallback
func (r *Report) IsFallback() bool {
	return r.HiringRecommendation == RecommendManualReview
}
