package assessment

import (
	"math"
	"sort"
)

// Balance tuning constants. The offset centers a neutral scheme near the
// midpoint of the logistic curve; the divisor controls sensitivity.
const (
	rawOffset       = 20.0
	logisticDivisor = 15.0
)

// Balance aggregates harms and benefits into a scored Result.
//
// Weights, when present, amplify benefits whose title or description mentions
// a weighted topic (case-insensitive substring). A benefit that mentions more
// than one topic receives every matching adjustment. The function never
// fails: non-finite impact values count as zero and the score degrades
// rather than erroring.
func Balance(harms, benefits []Impact, weights map[string]float64) Result {
	harmScore := sumImpacts(harms)
	benefitScore := sumImpacts(benefits)

	if len(weights) > 0 {
		for _, b := range benefits {
			for _, topic := range sortedTopics(weights) {
				if mentionsTopic(b, topic) {
					benefitScore += impactValue(b.Impact) * (weights[topic] - 1.0)
				}
			}
		}
	}

	raw := (benefitScore - harmScore) + rawOffset
	mapped := 1.0 / (1.0 + math.Exp(-(raw / logisticDivisor)))
	score := int(math.Round(mapped * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:        score,
		Tier:         TierForScore(score),
		HarmScore:    harmScore,
		BenefitScore: benefitScore,
		Harms:        harms,
		Benefits:     benefits,
		TopHarms:     TopImpacts(harms, 3),
		TopBenefits:  TopImpacts(benefits, 3),
		Weights:      weights,
	}
}

// WithDefaults guarantees the balance engine never sees an empty list. A
// scheme with no triggered conditions still carries one nominal harm and one
// nominal benefit.
func WithDefaults(harms, benefits []Impact) ([]Impact, []Impact) {
	if len(harms) == 0 {
		harms = append(harms, Impact{
			Title:       "Low obvious policy conflict",
			Description: "No high-level constraints detected.",
			Impact:      1,
		})
	}
	if len(benefits) == 0 {
		benefits = append(benefits, Impact{
			Title:       "Development potential",
			Description: "Proposal would deliver development and local benefits.",
			Impact:      2,
		})
	}
	return harms, benefits
}

func sumImpacts(items []Impact) float64 {
	var total float64
	for _, it := range items {
		total += impactValue(it.Impact)
	}
	return total
}

// impactValue coerces malformed magnitudes to zero so a bad row can never
// break the score.
func impactValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sortedTopics fixes the application order so weight adjustments sum
// identically on every run.
func sortedTopics(weights map[string]float64) []string {
	topics := make([]string, 0, len(weights))
	for t := range weights {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}
