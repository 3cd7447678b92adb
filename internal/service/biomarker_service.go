package service

import (
	"encoding/json"
	"errors"
	"time"

	"life_score_backend/internal/model"
	"life_score_backend/internal/util"
)

// BiomarkerService serves and mutates the biomarker flag list. Flags are
// additive: submissions only ever append, and the single mutation offered
// here is a clinician marking one resolved.
type BiomarkerService struct {
	Meta    MetaStore
	retries int
	now     func() time.Time
}

func NewBiomarkerService(meta MetaStore, retries int) *BiomarkerService {
	return &BiomarkerService{Meta: meta, retries: retries, now: time.Now}
}

func (s *BiomarkerService) getFlags(userID uint) ([]model.BiomarkerFlag, int, error) {
	raw, version, err := s.Meta.Get(userID, model.MetaKeyFlags)
	if err != nil {
		return nil, 0, err
	}
	flags := []model.BiomarkerFlag{}
	if raw != nil {
		if err := json.Unmarshal(raw, &flags); err != nil {
			return nil, 0, err
		}
	}
	return flags, version, nil
}

// GetFlags returns the user's biomarker flags, optionally filtered by
// status.
func (s *BiomarkerService) GetFlags(userID uint, status model.FlagStatus) ([]model.BiomarkerFlag, error) {
	flags, _, err := s.getFlags(userID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return flags, nil
	}
	out := []model.BiomarkerFlag{}
	for _, f := range flags {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out, nil
}

// ResolveFlag marks one flag resolved on behalf of a clinician. Raced
// against a concurrent submission appending new flags, the versioned write
// loses and the resolution is replayed over the fresh list.
func (s *BiomarkerService) ResolveFlag(userID uint, flagID string, resolvedBy uint) (*model.BiomarkerFlag, error) {
	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		flags, version, err := s.getFlags(userID)
		if err != nil {
			return nil, err
		}

		idx := -1
		for i := range flags {
			if flags[i].ID == flagID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, util.ErrFlagNotFound
		}
		if flags[idx].Status == model.FlagResolved {
			return nil, util.ErrFlagAlreadyResolved
		}

		now := s.now()
		flags[idx].Status = model.FlagResolved
		flags[idx].ResolvedAt = &now
		flags[idx].ResolvedBy = resolvedBy

		raw, err := json.Marshal(flags)
		if err != nil {
			return nil, err
		}
		err = s.Meta.WriteBatch(userID, []model.MetaWrite{
			{Key: model.MetaKeyFlags, Value: raw, ExpectedVersion: version},
		})
		if errors.Is(err, util.ErrConcurrentUpdate) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved := flags[idx]
		return &resolved, nil
	}
	return nil, lastErr
}
