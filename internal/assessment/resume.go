package assessment

import (
	"strings"
	"unicode/utf8"
)

var resumeWeights = []subWeight{
	{"completeness", 0.25},
	{"skill_diversity", 0.25},
	{"experience_depth", 0.25},
	{"education_relevance", 0.15},
	{"presentation_quality", 0.10},
}

var bulletMarkers = []string{"•", "▪", "◦"}

// scoreResume rates the structure and completeness of a profile
func (e *Engine) scoreResume(profile *CandidateProfile) ComponentScore {
	sub := map[string]float64{}

	sections := 0
	if profile.Email != "" {
		sections++
	}
	if len(profile.Experience.JobTitles) > 0 {
		sections++
	}
	if len(profile.Skills.AllSkills) > 0 {
		sections++
	}
	if len(profile.Education.Degrees) > 0 {
		sections++
	}
	sub["completeness"] = float64(sections) / 4 * 100

	categories := populatedCategories(profile.Skills.TechnicalSkills)
	sub["skill_diversity"] = clampScore(float64(len(profile.Skills.AllSkills)*5 + categories*10))

	exp := profile.Experience
	sub["experience_depth"] = clampScore(exp.TotalYears*10 + float64(len(exp.JobTitles)*5) + float64(len(exp.Companies)*3))

	sub["education_relevance"] = clampScore(e.educationScore(profile.Education.EducationLevel))
	sub["presentation_quality"] = presentationQuality(profile.ResumeText)

	for k, v := range sub {
		sub[k] = round2(v)
	}

	return ComponentScore{
		OverallScore: weightedSum(sub, resumeWeights),
		SubScores:    sub,
		Analysis: map[string]any{
			"summary": resumeSummary(sub),
		},
	}
}

func (e *Engine) educationScore(level EducationLevel) float64 {
	if level == "" {
		level = EducationHighSchool
	}
	if score, ok := e.config.EducationScores[level]; ok {
		return score
	}
	return e.config.DefaultEducationScore
}

func presentationQuality(text string) float64 {
	score := 70.0
	if utf8.RuneCountInString(text) > 500 {
		score += 10
	}
	if len(strings.Split(text, "\n")) > 20 {
		score += 10
	}
	for _, marker := range bulletMarkers {
		if strings.Contains(text, marker) {
			score += 10
			break
		}
	}
	return clampScore(score)
}

func populatedCategories(technical map[string][]string) int {
	n := 0
	for _, skills := range technical {
		if len(skills) > 0 {
			n++
		}
	}
	return n
}

// resumeSummary describes completeness, skill diversity and experience depth in one sentence
func resumeSummary(sub map[string]float64) string {
	var parts []string

	switch c := sub["completeness"]; {
	case c >= 80:
		parts = append(parts, "Resume contains all essential sections")
	case c >= 60:
		parts = append(parts, "Resume is mostly complete with minor gaps")
	default:
		parts = append(parts, "Resume is missing key sections")
	}

	switch d := sub["skill_diversity"]; {
	case d >= 80:
		parts = append(parts, "demonstrates diverse technical competencies")
	case d >= 60:
		parts = append(parts, "shows adequate technical skills")
	default:
		parts = append(parts, "has limited technical skill representation")
	}

	switch x := sub["experience_depth"]; {
	case x >= 80:
		parts = append(parts, "and substantial professional experience")
	case x >= 60:
		parts = append(parts, "and moderate professional experience")
	default:
		parts = append(parts, "but limited professional experience")
	}

	return strings.Join(parts, ". ") + "."
}
