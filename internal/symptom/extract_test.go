package symptom

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
	"life_score_backend/internal/scoring"
)

var symptomNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func symptomAssessment() catalog.Assessment {
	return catalog.Assessment{
		Key: "testosterone",
		Questions: []catalog.Question{
			{
				ID:               "testosterone_q1",
				Type:             catalog.TypeMultiselect,
				CapturesSymptoms: true,
				SymptomCategory:  "Hormonal",
			},
			{ID: "testosterone_q1_severity", Type: catalog.TypeRadio},
			{ID: "testosterone_q1_frequency", Type: catalog.TypeRadio},
		},
	}
}

func answers(t *testing.T, payload string) scoring.AnswerSet {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return scoring.DecodeAnswers(raw)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []Report
	}{
		{
			name: "symptoms with companions",
			payload: `{
				"testosterone_q1": ["fatigue","low_libido"],
				"testosterone_q1_severity": "Severe",
				"testosterone_q1_frequency": "Weekly"
			}`,
			expected: []Report{
				{Name: "fatigue", Category: "Hormonal", Severity: model.SeveritySevere, Frequency: model.FrequencyWeekly},
				{Name: "low_libido", Category: "Hormonal", Severity: model.SeveritySevere, Frequency: model.FrequencyWeekly},
			},
		},
		{
			name:    "companions default to moderate monthly",
			payload: `{"testosterone_q1": ["fatigue"]}`,
			expected: []Report{
				{Name: "fatigue", Category: "Hormonal", Severity: model.SeverityModerate, Frequency: model.FrequencyMonthly},
			},
		},
		{
			name:     "none sentinel short-circuits even with co-selections",
			payload:  `{"testosterone_q1": ["none","fatigue"], "testosterone_q1_severity": "Severe"}`,
			expected: nil,
		},
		{
			name:     "scalar answer to multiselect is no selection",
			payload:  `{"testosterone_q1": "fatigue"}`,
			expected: nil,
		},
		{
			name:    "duplicate selections collapse",
			payload: `{"testosterone_q1": ["fatigue","fatigue"]}`,
			expected: []Report{
				{Name: "fatigue", Category: "Hormonal", Severity: model.SeverityModerate, Frequency: model.FrequencyMonthly},
			},
		},
		{
			name:    "invalid companion values fall back to defaults",
			payload: `{"testosterone_q1": ["fatigue"], "testosterone_q1_severity": "Catastrophic", "testosterone_q1_frequency": "Hourly"}`,
			expected: []Report{
				{Name: "fatigue", Category: "Hormonal", Severity: model.SeverityModerate, Frequency: model.FrequencyMonthly},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(symptomAssessment(), answers(t, tt.payload))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeCreatesAndUpdates(t *testing.T) {
	merged, newNames := Merge(nil, []Report{
		{Name: "fatigue", Category: "Hormonal", Severity: model.SeverityMild, Frequency: model.FrequencyWeekly},
	}, "testosterone", symptomNow)

	require.Len(t, merged, 1)
	assert.Equal(t, []string{"fatigue"}, newNames)
	assert.Equal(t, symptomNow, merged[0].FirstReported)
	assert.Equal(t, []string{"testosterone"}, merged[0].SourceAssessments)

	later := symptomNow.Add(48 * time.Hour)
	merged2, newNames2 := Merge(merged, []Report{
		{Name: "fatigue", Category: "Hormonal", Severity: model.SeveritySevere, Frequency: model.FrequencyMonthly},
	}, "sleep", later)

	require.Len(t, merged2, 1)
	assert.Empty(t, newNames2)
	got := merged2[0]
	assert.Equal(t, model.SeveritySevere, got.Severity, "severity upgrades")
	assert.Equal(t, model.FrequencyWeekly, got.Frequency, "frequency never downgrades")
	assert.Equal(t, symptomNow, got.FirstReported)
	assert.Equal(t, later, got.LastUpdated)
	assert.Equal(t, []string{"testosterone", "sleep"}, got.SourceAssessments)
}

func TestMergeIsMonotonic(t *testing.T) {
	existing := []model.Symptom{{
		Name:              "fatigue",
		Severity:          model.SeveritySevere,
		Frequency:         model.FrequencyDaily,
		FirstReported:     symptomNow,
		LastUpdated:       symptomNow,
		SourceAssessments: []string{"testosterone"},
	}}

	merged, _ := Merge(existing, []Report{
		{Name: "fatigue", Severity: model.SeverityMild, Frequency: model.FrequencyMonthly},
	}, "testosterone", symptomNow.Add(time.Hour))

	require.Len(t, merged, 1)
	assert.Equal(t, model.SeveritySevere, merged[0].Severity)
	assert.Equal(t, model.FrequencyDaily, merged[0].Frequency)
	assert.Equal(t, []string{"testosterone"}, merged[0].SourceAssessments, "source set stays deduplicated")
}

func TestMergeSortsByName(t *testing.T) {
	merged, _ := Merge(nil, []Report{
		{Name: "low_libido"},
		{Name: "brain_fog"},
		{Name: "fatigue"},
	}, "testosterone", symptomNow)

	require.Len(t, merged, 3)
	assert.Equal(t, "brain_fog", merged[0].Name)
	assert.Equal(t, "fatigue", merged[1].Name)
	assert.Equal(t, "low_libido", merged[2].Name)
}
