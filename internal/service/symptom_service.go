package service

import (
	"encoding/json"

	"life_score_backend/internal/model"
)

// SymptomService serves the centralized symptom aggregate maintained by
// submission passes.
type SymptomService struct {
	Meta MetaStore
}

func NewSymptomService(meta MetaStore) *SymptomService {
	return &SymptomService{Meta: meta}
}

// GetCentralizedSymptoms returns every symptom the user has ever reported,
// each at its strongest observed severity and frequency. Never an error for
// a user with no history: that is an empty list.
func (s *SymptomService) GetCentralizedSymptoms(userID uint) ([]model.Symptom, error) {
	raw, _, err := s.Meta.Get(userID, model.MetaKeySymptoms)
	if err != nil {
		return nil, err
	}
	symptoms := []model.Symptom{}
	if raw != nil {
		if err := json.Unmarshal(raw, &symptoms); err != nil {
			return nil, err
		}
	}
	return symptoms, nil
}
