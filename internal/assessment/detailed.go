package assessment

import (
	"context"

	"github.com/kfreiman/hirecheck/internal/textmatch"
)

func (e *Engine) detailedAnalysis(ctx context.Context, profile *CandidateProfile, job *JobRequirement, scores map[Component]ComponentScore, culturalFit ComponentScore) map[string]any {
	name := profile.Name
	if name == "" {
		name = "Unknown"
	}
	experienceLevel := string(profile.Experience.ExperienceLevel)
	if experienceLevel == "" {
		experienceLevel = "unknown"
	}
	educationLevel := string(profile.Education.EducationLevel)
	if educationLevel == "" {
		educationLevel = "unknown"
	}
	position := job.Title
	if position == "" {
		position = "Unknown"
	}

	alignment := map[string]any{
		"position":               position,
		"skill_match_percentage": scores[ComponentSkillMatch].OverallScore,
		"experience_alignment":   scores[ComponentExperienceRelevance].OverallScore,
		"cultural_fit_score":     culturalFit.OverallScore,
	}
	if overlap := e.termOverlap(ctx, profile.ResumeText, job.Description); overlap != nil {
		alignment["term_overlap"] = overlap
	}

	highest, lowest := scoreExtremes(scores)

	return map[string]any{
		"candidate_summary": map[string]any{
			"name":             name,
			"experience_level": experienceLevel,
			"total_years":      profile.Experience.TotalYears,
			"key_skills":       firstN(profile.Skills.AllSkills, 10),
			"education_level":  educationLevel,
		},
		"role_alignment": alignment,
		"assessment_summary": map[string]any{
			"total_components_evaluated": len(scores),
			"highest_scoring_area":       highest,
			"lowest_scoring_area":        lowest,
		},
	}
}

// termOverlap is best effort: analyzer errors are logged and the overlap omitted
func (e *Engine) termOverlap(ctx context.Context, resumeText, jobText string) *textmatch.Result {
	if e.termAnalyzer == nil || resumeText == "" || jobText == "" {
		return nil
	}
	result, err := e.termAnalyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		e.logger.WarnContext(ctx, "term overlap analysis failed", "error", err)
		return nil
	}
	return result
}

// scoreExtremes returns the highest and lowest scoring components.
// Ties resolve to the earlier component in canonical order.
func scoreExtremes(scores map[Component]ComponentScore) (highest, lowest Component) {
	first := true
	var hi, lo float64
	for _, c := range componentOrder {
		s, ok := scores[c]
		if !ok {
			continue
		}
		if first {
			highest, lowest, hi, lo = c, c, s.OverallScore, s.OverallScore
			first = false
			continue
		}
		if s.OverallScore > hi {
			highest, hi = c, s.OverallScore
		}
		if s.OverallScore < lo {
			lowest, lo = c, s.OverallScore
		}
	}
	return highest, lowest
}
