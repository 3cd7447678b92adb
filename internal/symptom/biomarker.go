package symptom

import (
	"sort"
	"time"

	"life_score_backend/internal/model"
)

// ResolveFlags unions the biomarkers implied by each symptom's vectors and
// emits a flag for every biomarker not already actively flagged for the
// user. The resolver is strictly additive: it never removes, downgrades or
// re-creates an existing active flag, and running it twice over an unchanged
// symptom set yields nothing the second time. Resolved flags do not block a
// re-flag — a biomarker cleared by a clinician can be implicated again.
func ResolveFlags(symptoms []model.Symptom, existing []model.BiomarkerFlag, lookup CorrelationLookup, now time.Time) []model.BiomarkerFlag {
	active := make(map[string]bool, len(existing))
	for _, f := range existing {
		if f.Status == model.FlagActive {
			active[f.Biomarker] = true
		}
	}

	// First triggering symptom wins as the flag reason; iterate symptoms in
	// order and biomarkers sorted for deterministic output.
	var created []model.BiomarkerFlag
	for _, s := range symptoms {
		union := make(map[string]bool)
		for _, vector := range lookup.VectorsFor(s.Name) {
			for _, biomarker := range lookup.BiomarkersFor(vector) {
				union[biomarker] = true
			}
		}

		biomarkers := make([]string, 0, len(union))
		for b := range union {
			biomarkers = append(biomarkers, b)
		}
		sort.Strings(biomarkers)

		for _, biomarker := range biomarkers {
			if active[biomarker] {
				continue
			}
			active[biomarker] = true
			created = append(created, model.BiomarkerFlag{
				ID:                model.GenerateUUID(),
				Biomarker:         biomarker,
				Status:            model.FlagActive,
				Reason:            s.Name,
				TriggeringSymptom: s.Name,
				Source:            model.FlagSourceAuto,
				CreatedAt:         now,
			})
		}
	}
	return created
}
