package assessment

import (
	"fmt"
	"strings"
)

// ExperienceScore is the experience relevance component plus the numeric
// years it was computed from, which the risk detector reads directly
type ExperienceScore struct {
	ComponentScore
	TotalYears float64
	Required   YearRange
}

var experienceWeights = []subWeight{
	{"years_alignment", 0.30},
	{"role_relevance", 0.30},
	{"progression_quality", 0.20},
	{"leadership_experience", 0.10},
	{"industry_match", 0.10},
}

// industryMatchScore is a constant until an industry taxonomy exists
const industryMatchScore = 75

func (e *Engine) scoreExperience(profile *CandidateProfile, job *JobRequirement) ExperienceScore {
	exp := profile.Experience

	level := job.ExperienceLevel
	if level == "" {
		level = e.config.DefaultJobLevel
	}
	required, ok := e.config.ExperienceRanges[level]
	if !ok {
		required = e.config.ExperienceRanges[e.config.DefaultJobLevel]
	}

	progression := exp.CareerProgression

	sub := map[string]float64{
		"years_alignment":       yearsAlignment(exp.TotalYears, required),
		"role_relevance":        roleRelevance(exp.JobTitles, job.Title),
		"progression_quality":   progressionQuality(progression),
		"leadership_experience": leadershipExperience(progression, exp.JobTitles),
		"industry_match":        industryMatchScore,
	}
	for k, v := range sub {
		sub[k] = round2(clampScore(v))
	}

	candidateLevel := exp.ExperienceLevel
	if candidateLevel == "" {
		candidateLevel = LevelEntry
	}

	return ExperienceScore{
		ComponentScore: ComponentScore{
			OverallScore: weightedSum(sub, experienceWeights),
			SubScores:    sub,
			Analysis: map[string]any{
				"experience_level_match": candidateLevel == level,
				"years_vs_requirement": fmt.Sprintf("%s years (requirement: %s-%s)",
					formatNumber(exp.TotalYears), formatNumber(required.Min), formatNumber(required.Max)),
				"career_highlights":      firstN(exp.JobTitles, 3),
				"progression_indicators": progression,
			},
		},
		TotalYears: exp.TotalYears,
		Required:   required,
	}
}

// yearsAlignment is 100 inside the range, decays 5 points per year above it
// (floor 70), and scales linearly below it
func yearsAlignment(years float64, r YearRange) float64 {
	switch {
	case years >= r.Min && years <= r.Max:
		return 100
	case years > r.Max:
		overshoot := years - r.Max
		if s := 100 - overshoot*5; s > 70 {
			return s
		}
		return 70
	case r.Min > 0:
		return years / r.Min * 100
	default:
		return 0
	}
}

// roleRelevance takes the best keyword overlap of any previous title with the target role.
// This is a best-fit heuristic: it does not favour recent titles.
func roleRelevance(titles []string, target string) float64 {
	targetWords := strings.Fields(strings.ToLower(target))
	if len(titles) == 0 || len(targetWords) == 0 {
		return 50
	}

	targetSet := make(map[string]bool, len(targetWords))
	for _, w := range targetWords {
		targetSet[w] = true
	}

	best := 0.0
	for _, title := range titles {
		common := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(title)) {
			if targetSet[w] {
				common[w] = true
			}
		}
		if relevance := float64(len(common)) / float64(len(targetWords)) * 100; relevance > best {
			best = relevance
		}
	}
	return best
}

func progressionQuality(p CareerProgression) float64 {
	score := 70.0
	if p.ShowsGrowth {
		score += 20
	}
	if p.LeadershipProgression {
		score += 10
	}
	return clampScore(score)
}

func leadershipExperience(p CareerProgression, titles []string) float64 {
	score := 50.0
	if p.LeadershipProgression {
		score += 30
	}
	for _, title := range titles {
		t := strings.ToLower(title)
		if strings.Contains(t, "lead") || strings.Contains(t, "manager") {
			score += 20
			break
		}
	}
	return clampScore(score)
}
