package scoring

import (
	"math"

	"life_score_backend/internal/model"
)

// AveragePillars averages each pillar's per-assessment scores across all
// completed assessments, weighting every assessment that touched the pillar
// equally. A pillar no assessment touched stays absent.
func AveragePillars(perAssessment []model.PillarScores) model.PillarScores {
	sums := make(map[model.Pillar]float64)
	counts := make(map[model.Pillar]int)
	for _, scores := range perAssessment {
		for pillar, score := range scores {
			sums[pillar] += score
			counts[pillar]++
		}
	}

	avg := make(model.PillarScores, len(sums))
	for pillar, sum := range sums {
		avg[pillar] = sum / float64(counts[pillar])
	}
	return avg
}

// LifeScore is the mean of exactly the observed pillar scores on a 0-10
// scale, rounded to one decimal. Pillars with no observation are excluded,
// never defaulted: a user assessed only on Mind and Body is scored on Mind
// and Body alone.
func LifeScore(avg model.PillarScores) float64 {
	if len(avg) == 0 {
		return 0
	}
	sum := 0.0
	for _, score := range avg {
		sum += score
	}
	life := sum / float64(len(avg))
	if life < 0 {
		life = 0
	}
	if life > 10 {
		life = 10
	}
	return math.Round(life*10) / 10
}
