package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"life_score_backend/internal/model"
)

func TestAveragePillars(t *testing.T) {
	avg := AveragePillars([]model.PillarScores{
		{model.PillarBody: 4, model.PillarMind: 6},
		{model.PillarBody: 8},
	})

	assert.InDelta(t, 6.0, avg[model.PillarBody], 1e-9, "equal weight per assessment touching the pillar")
	assert.InDelta(t, 6.0, avg[model.PillarMind], 1e-9)
	_, ok := avg[model.PillarLifestyle]
	assert.False(t, ok)
}

func TestLifeScore(t *testing.T) {
	tests := []struct {
		name     string
		avg      model.PillarScores
		expected float64
	}{
		{
			name:     "mean of all four pillars",
			avg:      model.PillarScores{model.PillarMind: 6, model.PillarBody: 4, model.PillarLifestyle: 8, model.PillarAesthetics: 2},
			expected: 5,
		},
		{
			name:     "missing pillars excluded, not zero-filled",
			avg:      model.PillarScores{model.PillarMind: 6, model.PillarBody: 4},
			expected: 5,
		},
		{
			name:     "rounded to one decimal",
			avg:      model.PillarScores{model.PillarMind: 7, model.PillarBody: 4, model.PillarLifestyle: 3},
			expected: 4.7,
		},
		{
			name:     "no observations",
			avg:      model.PillarScores{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LifeScore(tt.avg), 1e-9)
		})
	}
}
