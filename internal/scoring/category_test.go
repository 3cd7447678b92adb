package scoring

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
)

var scoringNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixtureAssessment() catalog.Assessment {
	return catalog.Assessment{
		Key:   "testosterone",
		Title: "Testosterone Assessment",
		Questions: []catalog.Question{
			{
				ID:   "testosterone_q1",
				Type: catalog.TypeMultiselect,
				Scoring: &catalog.ScoringRule{
					Category: "Symptom Severity",
					Weight:   3,
					Answers:  map[string]float64{"fatigue": 2, "low_libido": 2, "none": 9},
				},
				CapturesSymptoms: true,
				SymptomCategory:  "Hormonal",
			},
			{
				ID:   "testosterone_q2",
				Type: catalog.TypeRadio,
				Scoring: &catalog.ScoringRule{
					Category: "Exercise & Lifestyle",
					Weight:   2.5,
					Answers:  map[string]float64{"none": 2, "weekly": 7, "frequent": 9},
				},
			},
			{
				ID:   "testosterone_q_dob",
				Type: catalog.TypeDOB,
				Scoring: &catalog.ScoringRule{
					Category:    "Age Factor",
					Weight:      1,
					Calculation: catalog.CalcAgeFromDOB,
					AgeScores:   map[string]float64{"18-25": 9, "26-35": 8, "36-45": 6, "76+": 2},
				},
			},
		},
	}
}

func decode(t *testing.T, payload string) AnswerSet {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return DecodeAnswers(raw)
}

func TestScoreCategoriesWeightedAverage(t *testing.T) {
	answers := decode(t, `{
		"testosterone_q1": ["fatigue","low_libido"],
		"testosterone_q2": "none"
	}`)

	scores, warnings := ScoreCategories(fixtureAssessment(), answers, scoringNow)

	assert.Empty(t, warnings)
	assert.InDelta(t, 4.0, scores["Symptom Severity"], 1e-9)     // (3*(2+2))/3
	assert.InDelta(t, 2.0, scores["Exercise & Lifestyle"], 1e-9) // (2.5*2)/2.5
	_, ok := scores["Age Factor"]
	assert.False(t, ok, "unanswered category must be omitted, not zero")
}

func TestScoreCategoriesAgeBracket(t *testing.T) {
	tests := []struct {
		name     string
		dob      string
		expected float64
	}{
		{name: "mid bracket", dob: `"1995-01-10"`, expected: 8},  // age 31 -> 26-35
		{name: "bracket edge", dob: `"2001-06-01"`, expected: 9}, // turns 25 today -> 18-25
		{name: "open bracket", dob: `"1940-01-01"`, expected: 2}, // 86 -> 76+
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := decode(t, `{"testosterone_q_dob": `+tt.dob+`}`)
			scores, warnings := ScoreCategories(fixtureAssessment(), answers, scoringNow)
			assert.Empty(t, warnings)
			assert.InDelta(t, tt.expected, scores["Age Factor"], 1e-9)
		})
	}
}

func TestScoreCategoriesMissingDOB(t *testing.T) {
	answers := decode(t, `{"testosterone_q_dob": "garbage", "testosterone_q2": "weekly"}`)
	scores, warnings := ScoreCategories(fixtureAssessment(), answers, scoringNow)

	_, ok := scores["Age Factor"]
	assert.False(t, ok, "unparseable DOB must omit the contribution, not default a bracket")
	assert.Len(t, warnings, 1)
	assert.InDelta(t, 7.0, scores["Exercise & Lifestyle"], 1e-9)
}

func TestScoreCategoriesMalformedAnswers(t *testing.T) {
	// Scalar where a multiselect is expected and an unknown option key must
	// not abort scoring of the rest of the submission.
	answers := decode(t, `{
		"testosterone_q1": "fatigue",
		"testosterone_q2": "unknown_option"
	}`)

	scores, warnings := ScoreCategories(fixtureAssessment(), answers, scoringNow)
	assert.Empty(t, warnings)

	_, ok := scores["Symptom Severity"]
	assert.False(t, ok, "malformed multiselect answer is no selection")
	// Unknown option scores 0 but the question still counts as answered.
	assert.InDelta(t, 0.0, scores["Exercise & Lifestyle"], 1e-9)
}

func TestMapPillars(t *testing.T) {
	reg := catalog.NewRegistry(catalog.Data{
		CategoryPillar: map[string]model.Pillar{
			"Symptom Severity":     model.PillarBody,
			"Exercise & Lifestyle": model.PillarBody,
		},
	})

	pillars, warnings := MapPillars(model.CategoryScores{
		"Symptom Severity":     4,
		"Exercise & Lifestyle": 2,
		"Unmapped Category":    7,
	}, reg)

	assert.Len(t, warnings, 1, "unmapped category is a data-quality warning")
	assert.InDelta(t, 3.0, pillars[model.PillarBody], 1e-9)
	assert.Len(t, pillars, 1, "untouched pillars stay absent")
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, AgeAt(time.Date(2001, 6, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 24, AgeAt(time.Date(2001, 6, 2, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 25, AgeAt(time.Date(2001, 5, 31, 0, 0, 0, 0, time.UTC), now))
}
