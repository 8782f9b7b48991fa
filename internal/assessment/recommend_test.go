package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func highRisks(n int) []RiskFactor {
	risks := make([]RiskFactor, n)
	for i := range risks {
		risks[i] = RiskFactor{Type: RiskEmploymentGap, Severity: SeverityHigh}
	}
	return risks
}

func TestTier(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		score    float64
		expected HiringRecommendation
	}{
		{100, RecommendStrongHire},
		{85, RecommendStrongHire},
		{84.99, RecommendHire},
		{70, RecommendHire},
		{69.99, RecommendMaybe},
		{55, RecommendMaybe},
		{54.99, RecommendNoHire},
		{0, RecommendNoHire},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, e.tier(tt.score), "score %v", tt.score)
	}
}

func TestHiringRecommendation(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		score    float64
		risks    []RiskFactor
		expected HiringRecommendation
	}{
		{"no risks", 90, nil, RecommendStrongHire},
		{"one high risk", 90, highRisks(1), RecommendStrongHire},
		{"two high risks", 90, highRisks(2), RecommendHire},
		{"downgrade applies once", 90, highRisks(3), RecommendHire},
		{"hire to maybe", 75, highRisks(2), RecommendMaybe},
		{"maybe to no hire", 60, highRisks(2), RecommendNoHire},
		{"no hire stays", 40, highRisks(2), RecommendNoHire},
		{"medium risks do not count", 90, []RiskFactor{
			{Severity: SeverityMedium}, {Severity: SeverityMedium}, {Severity: SeverityLow},
		}, RecommendStrongHire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.hiringRecommendation(tt.score, tt.risks))
		})
	}
}

func TestRecommendations(t *testing.T) {
	e := newTestEngine()

	rec := e.recommendations(90, scoreMap(map[Component]float64{
		ComponentResumeAnalysis:       10,
		ComponentSkillMatch:           60,
		ComponentExperienceRelevance:  69.99,
		ComponentInterviewPerformance: 65,
		ComponentCulturalFit:          10,
	}))

	assert.Equal(t, "Strong Hire - Excellent candidate with minimal risk", rec.HiringDecision)
	assert.Equal(t, []string{
		"Proceed with offer preparation",
		"Conduct reference checks",
		"Prepare comprehensive onboarding plan",
	}, rec.NextSteps)
	assert.Equal(t, []string{
		"Technical skills training in missing areas",
		"Mentoring and guidance in role-specific responsibilities",
		"Communication and presentation skills development",
	}, rec.DevelopmentPlan)
	assert.Empty(t, rec.OnboardingFocus)
	assert.Empty(t, rec.FollowUpQuestions)
}

func TestRecommendations_TierPlans(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "Hire - Good candidate with manageable development needs", e.recommendations(70, nil).HiringDecision)
	assert.Equal(t, "Maybe - Candidate shows potential but has significant gaps", e.recommendations(55, nil).HiringDecision)
	assert.Equal(t, "No Hire - Candidate does not meet minimum requirements", e.recommendations(10, nil).HiringDecision)
	assert.Empty(t, e.recommendations(10, nil).DevelopmentPlan)
}

func TestRecommendations_NextStepsAreCopied(t *testing.T) {
	e := newTestEngine()

	rec := e.recommendations(90, nil)
	rec.NextSteps[0] = "mutated"

	assert.Equal(t, "Proceed with offer preparation", e.recommendations(90, nil).NextSteps[0])
}
