package assessment

import (
	"errors"
	"fmt"
)

// maxHighlights caps the strengths and development areas of a report
const maxHighlights = 5

// ErrNoWeightedComponents is returned when none of the present components carries weight
var ErrNoWeightedComponents = errors.New("no weighted components present")

// overallScore is the weighted mean over the weighted components present in scores.
// Missing components drop out and the remaining weights renormalize.
func (e *Engine) overallScore(scores map[Component]ComponentScore) (float64, error) {
	total, totalWeight := 0.0, 0.0
	for _, c := range componentOrder {
		weight, weighted := e.config.Weights.For(c)
		if !weighted {
			continue
		}
		score, ok := scores[c]
		if !ok {
			continue
		}
		total += clampScore(score.OverallScore) * weight
		totalWeight += weight
	}
	if totalWeight <= 0 {
		return 0, ErrNoWeightedComponents
	}
	return round2(clampScore(total / totalWeight)), nil
}

// confidenceLevel grows with interview data and with the number of non-zero components
func (e *Engine) confidenceLevel(scores map[Component]ComponentScore, hasInterview bool) float64 {
	policy := e.config.Confidence
	confidence := policy.Base
	if hasInterview {
		confidence += policy.InterviewBonus
	}

	complete := 0
	for _, score := range scores {
		if score.OverallScore > 0 {
			complete++
		}
	}
	confidence += policy.ComponentBonus * float64(complete) / 4

	return round2(clampScore(confidence))
}

var strengthTemplates = map[Component]string{
	ComponentSkillMatch:           "Strong technical skill alignment (%s%%)",
	ComponentExperienceRelevance:  "Highly relevant experience (%s%%)",
	ComponentInterviewPerformance: "Excellent interview performance (%s%%)",
	ComponentResumeAnalysis:       "Well-structured professional profile (%s%%)",
}

var developmentAreas = map[Component]string{
	ComponentSkillMatch:           "Technical skills gap in key areas",
	ComponentExperienceRelevance:  "Limited relevant experience",
	ComponentInterviewPerformance: "Interview communication needs improvement",
	ComponentResumeAnalysis:       "Professional presentation could be enhanced",
}

// highlights emits templated strengths and development areas in canonical component order
func (e *Engine) highlights(scores map[Component]ComponentScore) (strengths, development []string) {
	strengths, development = []string{}, []string{}
	for _, c := range componentOrder {
		score, ok := scores[c]
		if !ok {
			continue
		}
		switch {
		case score.OverallScore >= e.config.Thresholds.Strength:
			if tmpl, ok := strengthTemplates[c]; ok {
				strengths = append(strengths, fmt.Sprintf(tmpl, formatNumber(score.OverallScore)))
			}
		case score.OverallScore < e.config.Thresholds.Weakness:
			if area, ok := developmentAreas[c]; ok {
				development = append(development, area)
			}
		}
	}
	return firstN(dedupe(strengths), maxHighlights), firstN(dedupe(development), maxHighlights)
}
