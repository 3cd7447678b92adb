package scoring

import (
	"fmt"

	"life_score_backend/internal/model"
)

// PillarLookup resolves a scoring category to its pillar. Satisfied by
// *catalog.Registry.
type PillarLookup interface {
	PillarFor(category string) (model.Pillar, bool)
}

// MapPillars groups category scores by pillar and takes the unweighted mean
// within each pillar the assessment touched. Pillars with no contributing
// category are absent from the result; a category with no pillar assignment
// is a configuration gap reported as a warning and skipped.
func MapPillars(categories model.CategoryScores, lookup PillarLookup) (model.PillarScores, []string) {
	sums := make(map[model.Pillar]float64)
	counts := make(map[model.Pillar]int)
	var warnings []string

	for category, score := range categories {
		pillar, ok := lookup.PillarFor(category)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("category %q has no pillar assignment", category))
			continue
		}
		sums[pillar] += score
		counts[pillar]++
	}

	scores := make(model.PillarScores, len(sums))
	for pillar, sum := range sums {
		scores[pillar] = sum / float64(counts[pillar])
	}
	return scores, warnings
}
