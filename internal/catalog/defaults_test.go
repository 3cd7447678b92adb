package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_score_backend/internal/model"
)

// The default tables reference each other by name; a typo in any of them
// silently drops scores or penalties at runtime, so cross-check them here.

func TestDefaultCategoriesMapToPillars(t *testing.T) {
	reg := Default()
	for _, a := range reg.Assessments() {
		for _, q := range a.Questions {
			if q.Scoring == nil {
				continue
			}
			_, ok := reg.PillarFor(q.Scoring.Category)
			assert.True(t, ok, "assessment %s question %s: category %q has no pillar", a.Key, q.ID, q.Scoring.Category)
		}
	}
}

func TestDefaultSymptomOptionsHaveVectors(t *testing.T) {
	reg := Default()
	for _, a := range reg.Assessments() {
		for _, q := range a.Questions {
			if !q.CapturesSymptoms {
				continue
			}
			require.NotNil(t, q.Scoring, "symptom question %s must be scored", q.ID)
			for option := range q.Scoring.Answers {
				if option == NoneOption {
					continue
				}
				vectors := reg.VectorsFor(option)
				assert.NotEmpty(t, vectors, "symptom option %q (question %s) maps to no vector", option, q.ID)
			}
		}
	}
}

func TestDefaultVectorsHavePenaltiesAndBiomarkers(t *testing.T) {
	reg := Default()
	seen := map[string]bool{}
	for _, vectors := range defaultSymptomVectors {
		for _, v := range vectors {
			seen[v] = true
		}
	}

	for vector := range seen {
		rule, ok := reg.PenaltyFor(vector)
		require.True(t, ok, "vector %q has no penalty rule", vector)
		assert.NotEmpty(t, rule.PillarImpact, "vector %q penalty has no pillar", vector)
		assert.NotEmpty(t, reg.BiomarkersFor(vector), "vector %q has no biomarkers", vector)
	}
}

func TestDefaultPenaltyGridsAreMonotonic(t *testing.T) {
	severities := []model.Severity{model.SeverityMild, model.SeverityModerate, model.SeveritySevere}
	frequencies := []model.Frequency{model.FrequencyMonthly, model.FrequencyWeekly, model.FrequencyDaily}

	for vector, rule := range defaultPenaltyMatrix {
		var prevSev float64
		for _, sev := range severities {
			var prevFreq float64
			for _, freq := range frequencies {
				p := rule.Resolve(sev, freq)
				assert.GreaterOrEqual(t, p, prevFreq, "vector %s: penalty must not drop with frequency (%s/%s)", vector, sev, freq)
				prevFreq = p
			}
			first := rule.Resolve(sev, model.FrequencyMonthly)
			assert.GreaterOrEqual(t, first, prevSev, "vector %s: penalty must not drop with severity (%s)", vector, sev)
			prevSev = first
		}
	}
}

func TestDefaultSeverityCompanionsExist(t *testing.T) {
	reg := Default()
	for _, a := range reg.Assessments() {
		ids := map[string]bool{}
		for _, q := range a.Questions {
			ids[q.ID] = true
		}
		for _, q := range a.Questions {
			if !q.CapturesSymptoms {
				continue
			}
			assert.True(t, ids[q.SeverityQuestionID()], "assessment %s: missing %s", a.Key, q.SeverityQuestionID())
			assert.True(t, ids[q.FrequencyQuestionID()], "assessment %s: missing %s", a.Key, q.FrequencyQuestionID())
		}
	}
}
