package assessment

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Weights are the base weights of the components that feed the overall score.
// Cultural fit has no weight: it is reported but never part of the hire decision.
type Weights struct {
	ResumeAnalysis       float64 `yaml:"resume_analysis" json:"resume_analysis" validate:"gte=0,lte=1"`
	SkillMatch           float64 `yaml:"skill_match" json:"skill_match" validate:"gte=0,lte=1"`
	InterviewPerformance float64 `yaml:"interview_performance" json:"interview_performance" validate:"gte=0,lte=1"`
	ExperienceRelevance  float64 `yaml:"experience_relevance" json:"experience_relevance" validate:"gte=0,lte=1"`
}

// For returns the base weight of a component and whether it is weighted at all
func (w Weights) For(c Component) (float64, bool) {
	switch c {
	case ComponentResumeAnalysis:
		return w.ResumeAnalysis, true
	case ComponentSkillMatch:
		return w.SkillMatch, true
	case ComponentInterviewPerformance:
		return w.InterviewPerformance, true
	case ComponentExperienceRelevance:
		return w.ExperienceRelevance, true
	}
	return 0, false
}

// ValidateWeights checks if weights sum to 1.0 (within tolerance)
func (w Weights) ValidateWeights() error {
	sum := w.ResumeAnalysis + w.SkillMatch + w.InterviewPerformance + w.ExperienceRelevance
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Thresholds are the score cut-offs used by the recommendation and highlight logic
type Thresholds struct {
	StrongHire      float64 `yaml:"strong_hire" json:"strong_hire" validate:"gte=0,lte=100,gtfield=Hire"`
	Hire            float64 `yaml:"hire" json:"hire" validate:"gte=0,lte=100,gtfield=Maybe"`
	Maybe           float64 `yaml:"maybe" json:"maybe" validate:"gte=0,lte=100"`
	Strength        float64 `yaml:"strength" json:"strength" validate:"gte=0,lte=100"`
	Weakness        float64 `yaml:"weakness" json:"weakness" validate:"gte=0,lte=100"`
	DevelopmentPlan float64 `yaml:"development_plan" json:"development_plan" validate:"gte=0,lte=100"`
}

// CulturalFitFactors weigh the cultural fit dimensions reported in the analysis
type CulturalFitFactors struct {
	CommunicationStyle      float64 `yaml:"communication_style" json:"communication_style" validate:"gte=0,lte=1"`
	CollaborationIndicators float64 `yaml:"collaboration_indicators" json:"collaboration_indicators" validate:"gte=0,lte=1"`
	AdaptabilitySignals     float64 `yaml:"adaptability_signals" json:"adaptability_signals" validate:"gte=0,lte=1"`
	LeadershipPotential     float64 `yaml:"leadership_potential" json:"leadership_potential" validate:"gte=0,lte=1"`
	LearningAgility         float64 `yaml:"learning_agility" json:"learning_agility" validate:"gte=0,lte=1"`
}

// YearRange is the expected experience window for a job level
type YearRange struct {
	Min float64 `yaml:"min" json:"min" validate:"gte=0"`
	Max float64 `yaml:"max" json:"max" validate:"gtefield=Min"`
}

// RiskPolicy holds the limits the risk detector and recommendation downgrade use
type RiskPolicy struct {
	GapYears             float64 `yaml:"gap_years" json:"gap_years" validate:"gte=0"`
	HighGapYears         float64 `yaml:"high_gap_years" json:"high_gap_years" validate:"gtefield=GapYears"`
	OverqualifiedYears   float64 `yaml:"overqualified_years" json:"overqualified_years" validate:"gte=0"`
	WeakInterviewScore   float64 `yaml:"weak_interview_score" json:"weak_interview_score" validate:"gte=0,lte=100"`
	HighRiskDowngradeMin int     `yaml:"high_risk_downgrade_min" json:"high_risk_downgrade_min" validate:"gte=1"`
}

// ConfidencePolicy shapes the confidence level of a report
type ConfidencePolicy struct {
	Base           float64 `yaml:"base" json:"base" validate:"gte=0,lte=100"`
	InterviewBonus float64 `yaml:"interview_bonus" json:"interview_bonus" validate:"gte=0,lte=100"`
	ComponentBonus float64 `yaml:"component_bonus" json:"component_bonus" validate:"gte=0,lte=100"`
}

// Config is the full set of tables the engine scores with
type Config struct {
	Weights               Weights                       `yaml:"weights" json:"weights"`
	Thresholds            Thresholds                    `yaml:"thresholds" json:"thresholds"`
	CulturalFitFactors    CulturalFitFactors            `yaml:"cultural_fit_factors" json:"cultural_fit_factors"`
	SkillSynonyms         map[string][]string           `yaml:"skill_synonyms" json:"skill_synonyms"`
	ExperienceRanges      map[ExperienceLevel]YearRange `yaml:"experience_ranges" json:"experience_ranges" validate:"required,dive"`
	DefaultJobLevel       ExperienceLevel               `yaml:"default_job_level" json:"default_job_level" validate:"required"`
	EducationScores       map[EducationLevel]float64    `yaml:"education_scores" json:"education_scores" validate:"dive,gte=0,lte=100"`
	DefaultEducationScore float64                       `yaml:"default_education_score" json:"default_education_score" validate:"gte=0,lte=100"`
	Risk                  RiskPolicy                    `yaml:"risk" json:"risk"`
	Confidence            ConfidencePolicy              `yaml:"confidence" json:"confidence"`
}

// DefaultConfig returns the standard scoring tables
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			ResumeAnalysis:       0.30,
			SkillMatch:           0.25,
			InterviewPerformance: 0.35,
			ExperienceRelevance:  0.10,
		},
		Thresholds: Thresholds{
			StrongHire:      85,
			Hire:            70,
			Maybe:           55,
			Strength:        80,
			Weakness:        60,
			DevelopmentPlan: 70,
		},
		CulturalFitFactors: CulturalFitFactors{
			CommunicationStyle:      0.25,
			CollaborationIndicators: 0.25,
			AdaptabilitySignals:     0.20,
			LeadershipPotential:     0.15,
			LearningAgility:         0.15,
		},
		SkillSynonyms: map[string][]string{
			"javascript": {"js", "node.js", "nodejs"},
			"typescript": {"ts"},
			"python":     {"py"},
			"postgresql": {"postgres"},
			"mongodb":    {"mongo"},
			"kubernetes": {"k8s"},
			"docker":     {"containerization"},
			"aws":        {"amazon web services"},
			"gcp":        {"google cloud platform", "google cloud"},
		},
		ExperienceRanges: map[ExperienceLevel]YearRange{
			LevelEntry:     {Min: 0, Max: 2},
			LevelJunior:    {Min: 1, Max: 3},
			LevelMid:       {Min: 3, Max: 7},
			LevelSenior:    {Min: 5, Max: 12},
			LevelExecutive: {Min: 8, Max: 20},
		},
		DefaultJobLevel: LevelMid,
		EducationScores: map[EducationLevel]float64{
			EducationDoctorate:  100,
			EducationMasters:    85,
			EducationBachelors:  70,
			EducationAssociates: 55,
			EducationHighSchool: 40,
		},
		DefaultEducationScore: 40,
		Risk: RiskPolicy{
			GapYears:             1,
			HighGapYears:         2,
			OverqualifiedYears:   15,
			WeakInterviewScore:   60,
			HighRiskDowngradeMin: 2,
		},
		Confidence: ConfidencePolicy{
			Base:           70,
			InterviewBonus: 20,
			ComponentBonus: 10,
		},
	}
}

// ConfigError reports an unusable engine configuration
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid engine config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid engine config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var validate = validator.New()

// Validate checks field ranges and the weight sum
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Err: err}
	}
	if err := c.Weights.ValidateWeights(); err != nil {
		return &ConfigError{Err: err}
	}
	if _, ok := c.ExperienceRanges[c.DefaultJobLevel]; !ok {
		return &ConfigError{Err: fmt.Errorf("default job level %q has no experience range", c.DefaultJobLevel)}
	}
	return nil
}

// LoadConfig returns DefaultConfig overridden by the YAML or JSON file at path.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}
