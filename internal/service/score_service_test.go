package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_score_backend/internal/model"
)

// submit runs one real submission so the read-side services see state the
// engine actually wrote.
func submit(t *testing.T, meta *fakeMeta, key, payload string) {
	t.Helper()
	svc := newTestService(meta, &fakeLocker{}, memberUsers())
	_, err := svc.SubmitAssessment(context.Background(), 1, key, rawAnswers(t, payload))
	require.NoError(t, err)
}

func TestGetScoresEmptyUser(t *testing.T) {
	svc := NewScoreService(serviceRegistry(), newFakeMeta())

	snap, err := svc.GetScores(7)
	require.NoError(t, err)
	assert.Nil(t, snap.LifeScore)
	assert.Empty(t, snap.AveragePillars)
	assert.Empty(t, snap.PerAssessment)
}

func TestGetScoresSnapshot(t *testing.T) {
	meta := newFakeMeta()
	submit(t, meta, "vitality", `{
		"vit_symptoms": ["none"],
		"vit_exercise": "frequent"
	}`)
	submit(t, meta, "sleep", `{"sleep_q1": "great"}`)

	svc := NewScoreService(serviceRegistry(), meta)
	snap, err := svc.GetScores(1)
	require.NoError(t, err)

	require.NotNil(t, snap.LifeScore)
	assert.InDelta(t, 9.0, snap.LifeScore.Value, 1e-9)
	assert.InDelta(t, 9.0, snap.AveragePillars[model.PillarBody], 1e-9)
	assert.Len(t, snap.PerAssessment, 2)
	assert.InDelta(t, 9.0, snap.PerAssessment["sleep"][model.PillarBody], 1e-9)
}

func TestGetHistoryOrder(t *testing.T) {
	meta := newFakeMeta()
	submit(t, meta, "sleep", `{"sleep_q1": "poor"}`)
	submit(t, meta, "sleep", `{"sleep_q1": "great"}`)

	svc := NewScoreService(serviceRegistry(), meta)
	history, err := svc.GetHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 2.0, history[0].LifeScore, 1e-9)
	assert.InDelta(t, 9.0, history[1].LifeScore, 1e-9)
}

func TestRecommendTiers(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		tier    string
	}{
		{
			name:    "clinical review on active flags",
			payload: `{"vit_symptoms": ["fatigue"], "vit_symptoms_severity": "Mild", "vit_symptoms_frequency": "Monthly", "vit_exercise": "frequent"}`,
			tier:    TierClinicalReview,
		},
		{
			name:    "guidance on middling score",
			payload: `{"vit_symptoms": ["none"], "vit_exercise": "sedentary"}`,
			tier:    TierGuidance,
		},
		{
			name:    "foundation on healthy score",
			payload: `{"vit_symptoms": ["none"], "vit_exercise": "frequent"}`,
			tier:    TierFoundation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := newFakeMeta()
			submit(t, meta, "vitality", tt.payload)

			svc := NewScoreService(serviceRegistry(), meta)
			rec, err := svc.Recommend(1)
			require.NoError(t, err)
			assert.Equal(t, tt.tier, rec.Tier)
		})
	}
}

func TestRecommendNoSubmissions(t *testing.T) {
	svc := NewScoreService(serviceRegistry(), newFakeMeta())
	rec, err := svc.Recommend(1)
	require.NoError(t, err)
	assert.Equal(t, TierFoundation, rec.Tier)
	assert.Zero(t, rec.ActiveFlags)
}
