package assessment

import (
	"fmt"
	"strings"
)

// detectRisks scans the profile and the typed component results for risk conditions.
// A nil component raises nothing for its condition class.
func (e *Engine) detectRisks(profile *CandidateProfile, skills *SkillMatchScore, experience *ExperienceScore, interview *InterviewScore) []RiskFactor {
	policy := e.config.Risk
	risks := []RiskFactor{}

	for _, gap := range profile.Experience.EmploymentGaps {
		length := gap.Years()
		if length <= policy.GapYears {
			continue
		}
		severity := SeverityMedium
		if length > policy.HighGapYears {
			severity = SeverityHigh
		}
		risks = append(risks, RiskFactor{
			Type:     RiskEmploymentGap,
			Severity: severity,
			Description: fmt.Sprintf("Employment gap of %s years (%s-%s)",
				formatNumber(length), formatNumber(gap.Start), formatNumber(gap.End)),
			Mitigation: "Discuss reasons for gap and activities during this period",
		})
	}

	if skills != nil && len(skills.Required.MissingSkills) > 0 {
		risks = append(risks, RiskFactor{
			Type:        RiskSkillGap,
			Severity:    SeverityMedium,
			Description: "Missing required skills: " + strings.Join(firstN(skills.Required.MissingSkills, 3), ", "),
			Mitigation:  "Assess learning ability and provide training plan",
		})
	}

	if experience != nil && experience.TotalYears > policy.OverqualifiedYears {
		risks = append(risks, RiskFactor{
			Type:        RiskOverqualification,
			Severity:    SeverityLow,
			Description: "Candidate may be overqualified for the role",
			Mitigation:  "Discuss career goals and long-term commitment",
		})
	}

	if interview != nil && interview.OverallScore < policy.WeakInterviewScore {
		risks = append(risks, RiskFactor{
			Type:        RiskInterviewPerformance,
			Severity:    SeverityHigh,
			Description: "Below-average interview performance",
			Mitigation:  "Consider additional interview rounds or practical assessments",
		})
	}

	return risks
}

func countSeverity(risks []RiskFactor, severity Severity) int {
	n := 0
	for _, r := range risks {
		if r.Severity == severity {
			n++
		}
	}
	return n
}
