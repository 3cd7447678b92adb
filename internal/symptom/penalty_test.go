package symptom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
)

func correlationFixture() *catalog.Registry {
	return catalog.NewRegistry(catalog.Data{
		SymptomVectors: map[string][]string{
			"fatigue":      {"Energy"},
			"brain_fog":    {"Energy"},
			"palpitations": {"Heart Health"},
			"low_libido":   {"Hormones"},
		},
		PenaltyMatrix: map[string]catalog.PenaltyRule{
			"Energy": {
				PillarImpact: model.PillarBody,
				Penalties: map[model.Severity]map[model.Frequency]float64{
					model.SeverityMild:   {model.FrequencyMonthly: 0.1, model.FrequencyWeekly: 0.2, model.FrequencyDaily: 0.3},
					model.SeveritySevere: {model.FrequencyMonthly: 0.4, model.FrequencyWeekly: 0.6, model.FrequencyDaily: 0.8},
				},
			},
			"Heart Health": {
				PillarImpact: model.PillarBody,
				Penalties: map[model.Severity]map[model.Frequency]float64{
					model.SeverityMild: {model.FrequencyMonthly: 0.25},
				},
			},
			"Hormones": {
				PillarImpact: model.PillarLifestyle,
				Penalties: map[model.Severity]map[model.Frequency]float64{
					model.SeverityMild: {model.FrequencyMonthly: 0.5},
				},
			},
		},
		VectorBiomarkers: map[string][]string{
			"Energy":       {"ferritin", "vitamin_d"},
			"Heart Health": {"lipid_panel", "ferritin"},
			"Hormones":     {"testosterone_total"},
		},
	})
}

func sym(name string, sev model.Severity, freq model.Frequency) model.Symptom {
	return model.Symptom{Name: name, Severity: sev, Frequency: freq}
}

func TestApplyPenaltiesSinglePenaltyPerVector(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	// Two symptoms on the same vector: max wins, never the sum.
	adjusted, warnings := ApplyPenalties(pillars, []model.Symptom{
		sym("fatigue", model.SeverityMild, model.FrequencyDaily),      // 0.3
		sym("brain_fog", model.SeveritySevere, model.FrequencyWeekly), // 0.6
	}, correlationFixture())

	assert.Empty(t, warnings)
	assert.InDelta(t, 4.4, adjusted[model.PillarBody], 1e-9)
	assert.InDelta(t, 5.0, pillars[model.PillarBody], 1e-9, "input map is not mutated")
}

func TestApplyPenaltiesCrossVectorSum(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	// Distinct vectors hitting the same pillar do sum: 0.3 + 0.25.
	adjusted, _ := ApplyPenalties(pillars, []model.Symptom{
		sym("fatigue", model.SeverityMild, model.FrequencyDaily),
		sym("palpitations", model.SeverityMild, model.FrequencyMonthly),
	}, correlationFixture())

	assert.InDelta(t, 4.45, adjusted[model.PillarBody], 1e-9)
}

func TestApplyPenaltiesFrequencyBreaksSeverityTie(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	adjusted, _ := ApplyPenalties(pillars, []model.Symptom{
		sym("fatigue", model.SeverityMild, model.FrequencyMonthly), // 0.1
		sym("brain_fog", model.SeverityMild, model.FrequencyDaily), // 0.3
	}, correlationFixture())

	assert.InDelta(t, 4.7, adjusted[model.PillarBody], 1e-9)
}

func TestApplyPenaltiesFloorsAtZero(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 0.2}

	adjusted, _ := ApplyPenalties(pillars, []model.Symptom{
		sym("fatigue", model.SeveritySevere, model.FrequencyDaily), // 0.8
	}, correlationFixture())

	assert.InDelta(t, 0.0, adjusted[model.PillarBody], 1e-9)
}

func TestApplyPenaltiesSkipsAbsentPillar(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	// Hormones impacts Lifestyle which has no observation yet; a penalty
	// must not create one.
	adjusted, _ := ApplyPenalties(pillars, []model.Symptom{
		sym("low_libido", model.SeverityMild, model.FrequencyMonthly),
	}, correlationFixture())

	_, ok := adjusted[model.PillarLifestyle]
	assert.False(t, ok)
	assert.InDelta(t, 5.0, adjusted[model.PillarBody], 1e-9)
}

func TestApplyPenaltiesUnmappedSymptomWarns(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	adjusted, warnings := ApplyPenalties(pillars, []model.Symptom{
		sym("mystery_symptom", model.SeveritySevere, model.FrequencyDaily),
	}, correlationFixture())

	assert.Len(t, warnings, 1)
	assert.InDelta(t, 5.0, adjusted[model.PillarBody], 1e-9)
}

func TestApplyPenaltiesUncoveredGridCellIsZero(t *testing.T) {
	pillars := model.PillarScores{model.PillarBody: 5}

	// Heart Health grid only covers Mild/Monthly.
	adjusted, warnings := ApplyPenalties(pillars, []model.Symptom{
		sym("palpitations", model.SeveritySevere, model.FrequencyDaily),
	}, correlationFixture())

	assert.Empty(t, warnings)
	assert.InDelta(t, 5.0, adjusted[model.PillarBody], 1e-9)
}
