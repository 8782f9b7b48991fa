package assessment

import "strings"

// MatchResult is the overlap between a candidate's skills and a requirement list
type MatchResult struct {
	MatchScore    float64  `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
}

// SkillMatcher compares skill lists case-insensitively with alias support
type SkillMatcher struct {
	// canonical skill -> aliases, all lowercase
	synonyms map[string][]string
}

// NewSkillMatcher creates a matcher over the given synonym table
func NewSkillMatcher(synonyms map[string][]string) *SkillMatcher {
	normalized := make(map[string][]string, len(synonyms))
	for skill, aliases := range synonyms {
		key := strings.ToLower(strings.TrimSpace(skill))
		for _, alias := range aliases {
			normalized[key] = append(normalized[key], strings.ToLower(strings.TrimSpace(alias)))
		}
	}
	return &SkillMatcher{synonyms: normalized}
}

// Match reports which required skills the candidate covers.
// Matched and missing skills keep the casing of the requirement list.
func (m *SkillMatcher) Match(candidateSkills, requiredSkills []string) MatchResult {
	if len(requiredSkills) == 0 {
		return MatchResult{
			MatchedSkills: []string{},
			MissingSkills: []string{},
		}
	}

	candidate := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			candidate = append(candidate, s)
		}
	}

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	for _, req := range requiredSkills {
		if m.covers(candidate, strings.ToLower(strings.TrimSpace(req))) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	return MatchResult{
		MatchScore:    round2(clampScore(100 * float64(len(matched)) / float64(len(requiredSkills)))),
		MatchedSkills: matched,
		MissingSkills: missing,
		TotalRequired: len(requiredSkills),
		TotalMatched:  len(matched),
	}
}

func (m *SkillMatcher) covers(candidate []string, required string) bool {
	if required == "" {
		return false
	}
	for _, skill := range candidate {
		if skill == required || strings.Contains(skill, required) || strings.Contains(required, skill) {
			return true
		}
		if m.aliases(skill, required) {
			return true
		}
	}
	return false
}

// aliases checks the synonym table in both directions
func (m *SkillMatcher) aliases(a, b string) bool {
	if variants, ok := m.synonyms[a]; ok && contains(variants, b) {
		return true
	}
	if variants, ok := m.synonyms[b]; ok && contains(variants, a) {
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
