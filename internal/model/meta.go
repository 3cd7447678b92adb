package model

import "encoding/json"

// UserMeta is one key of the per-user attribute store. All engine state
// (answer blobs, symptom aggregate, biomarker flags, score snapshots) lives
// here as opaque JSON under well-known keys. The version column backs the
// optimistic write-back used to serialize concurrent submissions; the store
// itself has no multi-key transaction.
type UserMeta struct {
	BaseModel
	UserID    uint            `gorm:"uniqueIndex:idx_user_meta_key;type:bigint unsigned;not null" json:"userId"`
	MetaKey   string          `gorm:"uniqueIndex:idx_user_meta_key;size:191;not null" json:"metaKey"`
	MetaValue json.RawMessage `gorm:"type:json" json:"metaValue"`
	Version   int             `gorm:"default:1" json:"version"`
}

func (UserMeta) TableName() string {
	return "user_meta"
}

// Well-known meta keys. Per-assessment keys are produced by the *Key helpers.
const (
	MetaKeySymptoms      = "centralized_symptoms"
	MetaKeyFlags         = "biomarker_flags"
	MetaKeyAveragePillar = "average_pillar_scores"
	MetaKeyLifeScore     = "life_score"
	MetaKeyScoreHistory  = "life_score_history"
)

func AnswersKey(assessmentKey string) string {
	return "assessment_" + assessmentKey + "_answers"
}

func PillarScoresKey(assessmentKey string) string {
	return "assessment_" + assessmentKey + "_pillar_scores"
}

// MetaWrite is one entry of a batched write-back. ExpectedVersion 0 means the
// key is expected to be absent (insert).
type MetaWrite struct {
	Key             string
	Value           json.RawMessage
	ExpectedVersion int
}
