package assessment

import (
	"math"
	"strconv"
)

// clampFloat64 clamps a float64 value to the given range
func clampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// clampScore bounds a score to [0,100]; NaN counts as 0
func clampScore(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return clampFloat64(value, 0, 100)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// subWeight is one entry of a scorer's fixed weight table
type subWeight struct {
	name   string
	weight float64
}

// weightedSum combines sub-scores with a fixed weight table, summing in table order
func weightedSum(scores map[string]float64, weights []subWeight) float64 {
	total := 0.0
	for _, w := range weights {
		total += scores[w.name] * w.weight
	}
	return round2(clampScore(total))
}

// formatNumber renders a number without trailing zeros, e.g. 5 or 1.5
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// dedupe drops repeated strings keeping first-seen order
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func firstN(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
