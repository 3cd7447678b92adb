package symptom

import (
	"fmt"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
)

// CorrelationLookup is the slice of the catalog the penalty engine and flag
// resolver need. Satisfied by *catalog.Registry.
type CorrelationLookup interface {
	VectorsFor(symptom string) []string
	PenaltyFor(vector string) (catalog.PenaltyRule, bool)
	BiomarkersFor(vector string) []string
}

// ApplyPenalties deducts pillar integrity penalties from the given pillar
// scores based on the user's symptom set.
//
// Per vector, the single highest penalty across all of that vector's
// symptoms is applied — penalties within one vector never sum, so two
// overlapping symptoms cannot double-penalize a pillar. Penalties from
// distinct vectors hitting the same pillar do sum. Scores floor at 0.
// Symptoms with no vector mapping, and vectors with no penalty rule, are
// data-quality warnings, not errors.
func ApplyPenalties(pillars model.PillarScores, symptoms []model.Symptom, lookup CorrelationLookup) (model.PillarScores, []string) {
	var warnings []string

	// Highest-penalty (severity, frequency) combination observed per vector.
	maxPenalty := make(map[string]float64)
	for _, s := range symptoms {
		vectors := lookup.VectorsFor(s.Name)
		if len(vectors) == 0 {
			warnings = append(warnings, fmt.Sprintf("symptom %q has no vector mapping", s.Name))
			continue
		}
		for _, vector := range vectors {
			rule, ok := lookup.PenaltyFor(vector)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("vector %q has no penalty rule", vector))
				continue
			}
			if p := rule.Resolve(s.Severity, s.Frequency); p > maxPenalty[vector] {
				maxPenalty[vector] = p
			}
		}
	}

	adjusted := pillars.Clone()
	for vector, penalty := range maxPenalty {
		if penalty == 0 {
			continue
		}
		rule, _ := lookup.PenaltyFor(vector)
		score, ok := adjusted[rule.PillarImpact]
		if !ok {
			// No observation for this pillar yet; a penalty cannot create one.
			continue
		}
		score -= penalty
		if score < 0 {
			score = 0
		}
		adjusted[rule.PillarImpact] = score
	}
	return adjusted, warnings
}
