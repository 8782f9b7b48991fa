package assessment

import (
	"time"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestEngine() *Engine {
	return NewDefaultEngine().WithClock(fixedClock)
}

// engineerProfile scores resume 76.5, skill match 58.34 and experience 90.5 against seniorJob
func engineerProfile() CandidateProfile {
	return CandidateProfile{
		ID:         "cand-1",
		Name:       "Ada Example",
		Email:      "ada@example.com",
		ResumeText: "Experienced backend engineer building Go and Kubernetes platforms",
		Skills: SkillSet{
			TechnicalSkills: map[string][]string{
				"languages": {"Go", "Python"},
				"devops":    {"Kubernetes", "Docker"},
				"databases": {"PostgreSQL"},
				"cloud":     {},
			},
			SoftSkills: []string{"Communication"},
			AllSkills:  []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Docker", "Communication"},
		},
		Experience: Experience{
			TotalYears:      6,
			ExperienceLevel: LevelSenior,
			JobTitles:       []string{"Senior Software Engineer", "Software Engineer"},
			Companies:       []string{"Acme", "Globex"},
			CareerProgression: CareerProgression{
				ShowsGrowth: true,
			},
			Responsibilities: []string{"Built payment APIs"},
		},
		Education: EducationInfo{
			Degrees:        []string{"BSc Computer Science"},
			EducationLevel: EducationBachelors,
		},
	}
}

func seniorJob() JobRequirement {
	return JobRequirement{
		ID:              "job-1",
		Title:           "Senior Software Engineer",
		Description:     "Senior engineer for Go microservices on Kubernetes with Terraform",
		RequiredSkills:  []string{"Go", "Kubernetes", "Terraform"},
		PreferredSkills: []string{"Python", "AWS"},
		ExperienceLevel: LevelSenior,
	}
}

func response(category string, score float64, strengths, improvements []string) InterviewResponse {
	return InterviewResponse{
		Question:     InterviewQuestion{Category: category, Difficulty: "medium"},
		ResponseText: "answer",
		Evaluation: Evaluation{
			OverallScore:        score,
			Strengths:           strengths,
			AreasForImprovement: improvements,
		},
	}
}

// sessionResponses average 75 overall
func sessionResponses() []InterviewResponse {
	return []InterviewResponse{
		response("technical", 80, []string{"Clear", "Deep"}, []string{"Pace"}),
		response("technical", 60, []string{"Clear"}, []string{"Detail"}),
		response("", 90, []string{"Calm"}, nil),
		response("behavioral", 70, nil, nil),
	}
}

func scoreMap(values map[Component]float64) map[Component]ComponentScore {
	out := make(map[Component]ComponentScore, len(values))
	for c, v := range values {
		out[c] = ComponentScore{OverallScore: v}
	}
	return out
}

func subScore(v float64) *float64 { return &v }
