package assessment

const (
	fallbackScore      = 50
	fallbackConfidence = 20
)

// FallbackReport is the report returned when an assessment cannot be completed.
// It routes the candidate to manual review and never fails itself.
func FallbackReport() *Report {
	return &Report{
		OverallScore: fallbackScore,
		ComponentScores: map[Component]ComponentScore{
			ComponentResumeAnalysis:      {OverallScore: fallbackScore},
			ComponentSkillMatch:          {OverallScore: fallbackScore},
			ComponentExperienceRelevance: {OverallScore: fallbackScore},
		},
		DetailedAnalysis: map[string]any{
			"error": "Assessment could not be completed due to technical issues",
		},
		Recommendations: Recommendations{
			HiringDecision:    "Manual Review Required",
			NextSteps:         []string{"Conduct manual assessment", "Review technical issues"},
			DevelopmentPlan:   []string{},
			OnboardingFocus:   []string{},
			FollowUpQuestions: []string{},
		},
		RiskFactors: []RiskFactor{{
			Type:        RiskTechnicalError,
			Severity:    SeverityHigh,
			Description: "Automated assessment failed",
			Mitigation:  "Conduct manual review",
		}},
		Strengths:            []string{"Assessment data available"},
		DevelopmentAreas:     []string{"Technical assessment needed"},
		HiringRecommendation: RecommendManualReview,
		ConfidenceLevel:      fallbackConfidence,
	}
}
