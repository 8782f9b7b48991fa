package assessment

type tierPlan struct {
	decision  string
	nextSteps []string
}

var tierPlans = map[HiringRecommendation]tierPlan{
	RecommendStrongHire: {
		decision: "Strong Hire - Excellent candidate with minimal risk",
		nextSteps: []string{
			"Proceed with offer preparation",
			"Conduct reference checks",
			"Prepare comprehensive onboarding plan",
		},
	},
	RecommendHire: {
		decision: "Hire - Good candidate with manageable development needs",
		nextSteps: []string{
			"Conduct final interview round",
			"Verify key skills through practical assessment",
			"Prepare targeted development plan",
		},
	},
	RecommendMaybe: {
		decision: "Maybe - Candidate shows potential but has significant gaps",
		nextSteps: []string{
			"Conduct additional technical assessment",
			"Interview with senior team members",
			"Evaluate cultural fit more thoroughly",
		},
	},
	RecommendNoHire: {
		decision: "No Hire - Candidate does not meet minimum requirements",
		nextSteps: []string{
			"Provide constructive feedback",
			"Consider for future opportunities if applicable",
			"Document assessment for learning purposes",
		},
	},
}

var developmentPlans = map[Component]string{
	ComponentSkillMatch:           "Technical skills training in missing areas",
	ComponentInterviewPerformance: "Communication and presentation skills development",
	ComponentExperienceRelevance:  "Mentoring and guidance in role-specific responsibilities",
}

// tier maps a score onto the four ordered tiers; lower bounds are inclusive
func (e *Engine) tier(score float64) HiringRecommendation {
	t := e.config.Thresholds
	switch {
	case score >= t.StrongHire:
		return RecommendStrongHire
	case score >= t.Hire:
		return RecommendHire
	case score >= t.Maybe:
		return RecommendMaybe
	default:
		return RecommendNoHire
	}
}

// downgrade moves a recommendation exactly one tier down; no_hire stays no_hire
func downgrade(r HiringRecommendation) HiringRecommendation {
	switch r {
	case RecommendStrongHire:
		return RecommendHire
	case RecommendHire:
		return RecommendMaybe
	default:
		return RecommendNoHire
	}
}

// hiringRecommendation applies a single downgrade when enough high-severity risks exist
func (e *Engine) hiringRecommendation(score float64, risks []RiskFactor) HiringRecommendation {
	base := e.tier(score)
	if countSeverity(risks, SeverityHigh) >= e.config.Risk.HighRiskDowngradeMin {
		return downgrade(base)
	}
	return base
}

// recommendations builds the bundle for the score-implied tier plus a development plan
// for every planned component scoring under the development threshold
func (e *Engine) recommendations(score float64, scores map[Component]ComponentScore) Recommendations {
	plan := tierPlans[e.tier(score)]

	development := []string{}
	for _, c := range componentOrder {
		s, ok := scores[c]
		if !ok || s.OverallScore >= e.config.Thresholds.DevelopmentPlan {
			continue
		}
		if item, ok := developmentPlans[c]; ok {
			development = append(development, item)
		}
	}

	return Recommendations{
		HiringDecision:    plan.decision,
		NextSteps:         append([]string(nil), plan.nextSteps...),
		DevelopmentPlan:   development,
		OnboardingFocus:   []string{},
		FollowUpQuestions: []string{},
	}
}
