package scoring

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected AnswerValue
	}{
		{
			name:     "string scalar",
			raw:      `"fatigue"`,
			expected: AnswerValue{Kind: KindScalar, Scalar: "fatigue"},
		},
		{
			name:     "number coerces to scalar",
			raw:      `42`,
			expected: AnswerValue{Kind: KindScalar, Scalar: "42"},
		},
		{
			name:     "string list",
			raw:      `["fatigue","low_libido"]`,
			expected: AnswerValue{Kind: KindList, List: []string{"fatigue", "low_libido"}},
		},
		{
			name:     "structured object",
			raw:      `{"date":"1985-03-14"}`,
			expected: AnswerValue{Kind: KindStructured, Structured: map[string]string{"date": "1985-03-14"}},
		},
		{
			name:     "mixed-type array collapses to none",
			raw:      `["fatigue", 3]`,
			expected: AnswerValue{},
		},
		{
			name:     "null collapses to none",
			raw:      `null`,
			expected: AnswerValue{Kind: KindScalar},
		},
		{
			name:     "invalid json collapses to none",
			raw:      `{broken`,
			expected: AnswerValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeAnswer(json.RawMessage(tt.raw))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAnswerValueDOB(t *testing.T) {
	scalar := AnswerValue{Kind: KindScalar, Scalar: "1985-03-14"}
	dob, ok := scalar.DOB()
	assert.True(t, ok)
	assert.Equal(t, time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC), dob)

	structured := AnswerValue{Kind: KindStructured, Structured: map[string]string{"date": "1990-12-01"}}
	dob, ok = structured.DOB()
	assert.True(t, ok)
	assert.Equal(t, 1990, dob.Year())

	_, ok = AnswerValue{Kind: KindScalar, Scalar: "not-a-date"}.DOB()
	assert.False(t, ok)

	_, ok = AnswerValue{Kind: KindList, List: []string{"1985-03-14"}}.DOB()
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	list := AnswerValue{Kind: KindList, List: []string{"a", "b"}}
	assert.True(t, list.Contains("a"))
	assert.False(t, list.Contains("c"))
	assert.False(t, AnswerValue{Kind: KindScalar, Scalar: "a"}.Contains("a"))
}
