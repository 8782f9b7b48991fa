package assessment

import "strings"

const (
	baseCulturalFit       = 70.0
	defaultCommunication  = 70.0
	teamworkSignal        = "Shows teamwork orientation"
	adaptabilitySignal    = "Demonstrates adaptability"
	collaborationHistory  = "Experience with team collaboration"
	changeManagementTrack = "Experience with change management"
)

var (
	feedbackTeamwork     = []string{"collaborative", "team"}
	feedbackAdaptability = []string{"adaptable", "flexible"}
	historyCollaboration = []string{"team", "collaborate", "mentor"}
	historyChange        = []string{"adapt", "change", "transform"}
)

// estimateCulturalFit derives a heuristic fit score from communication clarity and keyword cues.
// It is reported alongside the other components but never weighted into the overall score.
func (e *Engine) estimateCulturalFit(profile *CandidateProfile, responses []InterviewResponse) ComponentScore {
	score := baseCulturalFit
	var collaboration, adaptability []string

	if len(responses) > 0 {
		comm := make([]float64, 0, len(responses))
		for _, r := range responses {
			comm = append(comm, communicationClarity(r.Evaluation.Scores))

			feedback := strings.ToLower(r.Evaluation.Feedback)
			if containsAny(feedback, feedbackTeamwork) {
				collaboration = append(collaboration, teamworkSignal)
			}
			if containsAny(feedback, feedbackAdaptability) {
				adaptability = append(adaptability, adaptabilitySignal)
			}
		}
		score = (score + mean(comm)) / 2
	}

	for _, resp := range profile.Experience.Responsibilities {
		lower := strings.ToLower(resp)
		if containsAny(lower, historyCollaboration) {
			collaboration = append(collaboration, collaborationHistory)
		}
		if containsAny(lower, historyChange) {
			adaptability = append(adaptability, changeManagementTrack)
		}
	}

	return ComponentScore{
		OverallScore: round2(clampScore(score)),
		Analysis: map[string]any{
			"communication_style":      "professional",
			"collaboration_indicators": dedupe(collaboration),
			"adaptability_signals":     dedupe(adaptability),
			"values_alignment":         "moderate",
			"factor_weights":           e.config.CulturalFitFactors,
		},
	}
}

// communicationClarity falls back to the neutral value when the sub-score is missing
func communicationClarity(scores *EvaluationScores) float64 {
	if scores == nil || scores.CommunicationClarity == nil {
		return defaultCommunication
	}
	return clampScore(*scores.CommunicationClarity)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
