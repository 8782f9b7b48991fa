package assessment

// SkillMatchScore is the skill match component with its underlying match results
type SkillMatchScore struct {
	ComponentScore
	Required   MatchResult
	Preferred  MatchResult
	SkillDepth float64
}

const (
	requiredBlend  = 0.7
	preferredBlend = 0.3
	matchWeight    = 0.8
	depthWeight    = 0.2
)

// scoreSkillMatch compares candidate skills against the required and preferred lists
func (e *Engine) scoreSkillMatch(profile *CandidateProfile, job *JobRequirement) SkillMatchScore {
	candidateSkills := profile.Skills.AllSkills

	required := e.matcher.Match(candidateSkills, job.RequiredSkills)
	preferred := e.matcher.Match(candidateSkills, job.PreferredSkills)

	blended := required.MatchScore*requiredBlend + preferred.MatchScore*preferredBlend
	depth := round2(skillDepth(profile.Skills.TechnicalSkills, job.RequiredSkills))
	overall := round2(clampScore(blended*matchWeight + depth*depthWeight))

	listed := make(map[string]bool, len(job.RequiredSkills)+len(job.PreferredSkills))
	for _, s := range job.RequiredSkills {
		listed[s] = true
	}
	for _, s := range job.PreferredSkills {
		listed[s] = true
	}
	var additional []string
	for _, s := range candidateSkills {
		if !listed[s] {
			additional = append(additional, s)
		}
	}

	return SkillMatchScore{
		ComponentScore: ComponentScore{
			OverallScore: overall,
			SubScores: map[string]float64{
				"required_match":  required.MatchScore,
				"preferred_match": preferred.MatchScore,
				"skill_depth":     depth,
			},
			Analysis: map[string]any{
				"strong_matches":         firstN(required.MatchedSkills, 5),
				"missing_critical":       firstN(required.MissingSkills, 5),
				"additional_value":       firstN(additional, 5),
				"required_skills_match":  required,
				"preferred_skills_match": preferred,
				"skill_depth_score":      depth,
			},
		},
		Required:   required,
		Preferred:  preferred,
		SkillDepth: depth,
	}
}

// skillDepth blends category breadth (40%) with raw skill count (60%)
func skillDepth(technical map[string][]string, requiredSkills []string) float64 {
	if len(technical) == 0 || len(requiredSkills) == 0 {
		return 50
	}

	breadth := float64(populatedCategories(technical)) / float64(len(technical)) * 100

	total := 0
	for _, skills := range technical {
		total += len(skills)
	}
	depth := clampScore(float64(total * 5))

	return clampScore(breadth*0.4 + depth*0.6)
}
