package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore(t *testing.T) {
	e := newTestEngine()

	t.Run("renormalizes over present components", func(t *testing.T) {
		score, err := e.overallScore(scoreMap(map[Component]float64{
			ComponentResumeAnalysis: 80,
			ComponentSkillMatch:     60,
		}))
		require.NoError(t, err)
		// (80*.30 + 60*.25) / (.30 + .25)
		assert.Equal(t, 70.91, score)
	})

	t.Run("all weighted components", func(t *testing.T) {
		score, err := e.overallScore(scoreMap(map[Component]float64{
			ComponentResumeAnalysis:       80,
			ComponentSkillMatch:           60,
			ComponentExperienceRelevance:  50,
			ComponentInterviewPerformance: 90,
		}))
		require.NoError(t, err)
		assert.InDelta(t, 75.5, score, 0.001)
	})

	t.Run("cultural fit is not weighted", func(t *testing.T) {
		base := map[Component]float64{ComponentResumeAnalysis: 80, ComponentSkillMatch: 60}
		without, err := e.overallScore(scoreMap(base))
		require.NoError(t, err)

		base[ComponentCulturalFit] = 0
		with, err := e.overallScore(scoreMap(base))
		require.NoError(t, err)

		assert.Equal(t, without, with)
	})

	t.Run("no weighted component present", func(t *testing.T) {
		_, err := e.overallScore(scoreMap(map[Component]float64{ComponentCulturalFit: 70}))
		assert.ErrorIs(t, err, ErrNoWeightedComponents)
	})
}

func TestConfidenceLevel(t *testing.T) {
	e := newTestEngine()

	scores := scoreMap(map[Component]float64{
		ComponentResumeAnalysis:      80,
		ComponentSkillMatch:          0,
		ComponentExperienceRelevance: 50,
		ComponentCulturalFit:         70,
	})
	// 70 + 10*3/4
	assert.Equal(t, 77.5, e.confidenceLevel(scores, false))

	full := scoreMap(map[Component]float64{
		ComponentResumeAnalysis:       80,
		ComponentSkillMatch:           60,
		ComponentExperienceRelevance:  50,
		ComponentInterviewPerformance: 90,
		ComponentCulturalFit:          70,
	})
	assert.Equal(t, 100.0, e.confidenceLevel(full, true))
}

func TestHighlights(t *testing.T) {
	e := newTestEngine()

	strengths, development := e.highlights(scoreMap(map[Component]float64{
		ComponentResumeAnalysis:       85,
		ComponentSkillMatch:           90.5,
		ComponentExperienceRelevance:  50,
		ComponentInterviewPerformance: 59,
		ComponentCulturalFit:          95,
	}))

	assert.Equal(t, []string{
		"Well-structured professional profile (85%)",
		"Strong technical skill alignment (90.5%)",
	}, strengths)
	assert.Equal(t, []string{
		"Limited relevant experience",
		"Interview communication needs improvement",
	}, development)
}

func TestHighlights_BoundaryScores(t *testing.T) {
	e := newTestEngine()

	strengths, development := e.highlights(scoreMap(map[Component]float64{
		ComponentResumeAnalysis: 80,
		ComponentSkillMatch:     60,
	}))

	assert.Equal(t, []string{"Well-structured professional profile (80%)"}, strengths)
	assert.Empty(t, development)
}

func TestScoreExtremes(t *testing.T) {
	highest, lowest := scoreExtremes(scoreMap(map[Component]float64{
		ComponentResumeAnalysis:      70,
		ComponentSkillMatch:          70,
		ComponentExperienceRelevance: 40,
	}))
	assert.Equal(t, ComponentResumeAnalysis, highest)
	assert.Equal(t, ComponentExperienceRelevance, lowest)
}
