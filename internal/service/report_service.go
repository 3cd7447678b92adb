package service

import (
	"context"
	"encoding/json"
	"time"

	"life_score_backend/internal/model"
	"life_score_backend/internal/util"
)

// ReportService assembles a user's complete engine state into a JSON report
// and hands it to the storage provider. Clinician/admin surface only.
type ReportService struct {
	Users    UserLookup
	Scores   *ScoreService
	Symptoms *SymptomService
	Flags    *BiomarkerService
	Storage  *StorageService
	now      func() time.Time
}

func NewReportService(users UserLookup, scores *ScoreService, symptoms *SymptomService, flags *BiomarkerService, storage *StorageService) *ReportService {
	return &ReportService{
		Users:    users,
		Scores:   scores,
		Symptoms: symptoms,
		Flags:    flags,
		Storage:  storage,
		now:      time.Now,
	}
}

type UserReport struct {
	UserID      uint                      `json:"userId"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	Scores      *ScoreSnapshot            `json:"scores"`
	History     []model.ScoreHistoryEntry `json:"history"`
	Symptoms    []model.Symptom           `json:"symptoms"`
	Flags       []model.BiomarkerFlag     `json:"flags"`
}

// Export builds and uploads the report, returning its URL.
func (s *ReportService) Export(ctx context.Context, userID uint) (string, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	report := UserReport{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		GeneratedAt: s.now(),
	}
	if report.Scores, err = s.Scores.GetScores(userID); err != nil {
		return "", err
	}
	if report.History, err = s.Scores.GetHistory(userID); err != nil {
		return "", err
	}
	if report.Symptoms, err = s.Symptoms.GetCentralizedSymptoms(userID); err != nil {
		return "", err
	}
	if report.Flags, err = s.Flags.GetFlags(userID, ""); err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return s.Storage.ExportReport(ctx, userID, raw)
}
