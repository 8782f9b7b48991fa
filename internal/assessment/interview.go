package assessment

import "sort"

// CategoryScore is the mean interview score of one question category
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// InterviewScore is the interview performance component
type InterviewScore struct {
	ComponentScore
	TotalQuestions int
}

const unknownCategory = "unknown"

// scoreInterview averages the evaluated responses. Response order does not affect the result.
func (e *Engine) scoreInterview(responses []InterviewResponse) InterviewScore {
	if len(responses) == 0 {
		return InterviewScore{
			ComponentScore: ComponentScore{
				OverallScore: 0,
				Analysis:     map[string]any{"note": "No interview data available"},
			},
		}
	}

	all := make([]float64, 0, len(responses))
	byCategory := map[string][]float64{}
	var strengths, weaknesses []string

	for _, r := range responses {
		score := clampScore(r.Evaluation.OverallScore)
		all = append(all, score)

		category := r.Question.Category
		if category == "" {
			category = unknownCategory
		}
		byCategory[category] = append(byCategory[category], score)

		strengths = append(strengths, r.Evaluation.Strengths...)
		weaknesses = append(weaknesses, r.Evaluation.AreasForImprovement...)
	}

	categoryScores := make(map[string]float64, len(byCategory))
	ranked := make([]CategoryScore, 0, len(byCategory))
	for category, scores := range byCategory {
		avg := round2(clampScore(mean(scores)))
		categoryScores[category] = avg
		ranked = append(ranked, CategoryScore{Category: category, Score: avg})
	}

	return InterviewScore{
		ComponentScore: ComponentScore{
			OverallScore: round2(clampScore(mean(all))),
			SubScores:    categoryScores,
			Analysis: map[string]any{
				"total_questions":      len(responses),
				"category_scores":      categoryScores,
				"strongest_categories": topCategories(ranked, 3, true),
				"improvement_areas":    topCategories(ranked, 3, false),
				"key_strengths":        firstN(dedupe(strengths), 5),
				"development_needs":    firstN(dedupe(weaknesses), 5),
			},
		},
		TotalQuestions: len(responses),
	}
}

// topCategories ranks categories by score, ties broken by name
func topCategories(ranked []CategoryScore, n int, highest bool) []CategoryScore {
	out := make([]CategoryScore, len(ranked))
	copy(out, ranked)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			if highest {
				return out[i].Score > out[j].Score
			}
			return out[i].Score < out[j].Score
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
