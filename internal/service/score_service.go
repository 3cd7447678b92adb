package service

import (
	"encoding/json"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
)

// ScoreService serves the read side of the scoring engine: persisted
// snapshots, the recompute trail and the consultation tier derived from
// them.
type ScoreService struct {
	Catalog *catalog.Registry
	Meta    MetaStore
}

func NewScoreService(reg *catalog.Registry, meta MetaStore) *ScoreService {
	return &ScoreService{Catalog: reg, Meta: meta}
}

// ScoreSnapshot is the user-facing view of the persisted score state.
type ScoreSnapshot struct {
	LifeScore      *model.LifeScore              `json:"lifeScore,omitempty"`
	AveragePillars model.PillarScores            `json:"averagePillarScores"`
	PerAssessment  map[string]model.PillarScores `json:"perAssessment"`
}

func (s *ScoreService) getJSON(userID uint, key string, dest interface{}) (bool, error) {
	raw, _, err := s.Meta.Get(userID, key)
	if err != nil || raw == nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// GetScores assembles the current snapshot. A user with no submissions gets
// an empty snapshot, not an error.
func (s *ScoreService) GetScores(userID uint) (*ScoreSnapshot, error) {
	snap := &ScoreSnapshot{
		AveragePillars: model.PillarScores{},
		PerAssessment:  map[string]model.PillarScores{},
	}

	var life model.LifeScore
	ok, err := s.getJSON(userID, model.MetaKeyLifeScore, &life)
	if err != nil {
		return nil, err
	}
	if ok {
		snap.LifeScore = &life
	}

	if _, err := s.getJSON(userID, model.MetaKeyAveragePillar, &snap.AveragePillars); err != nil {
		return nil, err
	}

	for _, a := range s.Catalog.Assessments() {
		var scores model.PillarScores
		ok, err := s.getJSON(userID, model.PillarScoresKey(a.Key), &scores)
		if err != nil {
			return nil, err
		}
		if ok && len(scores) > 0 {
			snap.PerAssessment[a.Key] = scores
		}
	}
	return snap, nil
}

// GetHistory returns the life-score recompute trail, newest last.
func (s *ScoreService) GetHistory(userID uint) ([]model.ScoreHistoryEntry, error) {
	history := []model.ScoreHistoryEntry{}
	if _, err := s.getJSON(userID, model.MetaKeyScoreHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Consultation tiers, lowest-touch first.
const (
	TierFoundation     = "foundation"
	TierGuidance       = "guidance"
	TierClinicalReview = "clinical_review"
)

type Recommendation struct {
	Tier        string  `json:"tier"`
	LifeScore   float64 `json:"lifeScore"`
	ActiveFlags int     `json:"activeFlags"`
	Reason      string  `json:"reason"`
}

// Recommend maps the life score and active flag count to a consultation
// tier. Any active biomarker flag, or a life score below 4, warrants
// clinical review; a middling score gets guided coaching; otherwise the
// self-serve foundation tier.
func (s *ScoreService) Recommend(userID uint) (*Recommendation, error) {
	snap, err := s.GetScores(userID)
	if err != nil {
		return nil, err
	}

	flags := []model.BiomarkerFlag{}
	if _, err := s.getJSON(userID, model.MetaKeyFlags, &flags); err != nil {
		return nil, err
	}
	active := 0
	for _, f := range flags {
		if f.Status == model.FlagActive {
			active++
		}
	}

	rec := &Recommendation{ActiveFlags: active}
	if snap.LifeScore != nil {
		rec.LifeScore = snap.LifeScore.Value
	}

	switch {
	case snap.LifeScore == nil:
		rec.Tier = TierFoundation
		rec.Reason = "no assessments completed yet"
	case active > 0:
		rec.Tier = TierClinicalReview
		rec.Reason = "active biomarker flags require clinical follow-up"
	case rec.LifeScore < 4:
		rec.Tier = TierClinicalReview
		rec.Reason = "life score below clinical threshold"
	case rec.LifeScore < 7:
		rec.Tier = TierGuidance
		rec.Reason = "life score indicates room for guided improvement"
	default:
		rec.Tier = TierFoundation
		rec.Reason = "scores in healthy range"
	}
	return rec, nil
}
