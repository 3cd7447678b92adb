package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
	"life_score_backend/internal/scoring"
	"life_score_backend/internal/symptom"
	"life_score_backend/internal/util"
	"life_score_backend/pkg/logger"
	"life_score_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// MetaStore is the slice of the user-attribute store the engine needs.
// Implemented by repository.MetaRepository.
type MetaStore interface {
	Get(userID uint, key string) (json.RawMessage, int, error)
	WriteBatch(userID uint, writes []model.MetaWrite) error
}

// Locker serializes scoring passes per user. Implemented by
// repository.LockRepository.
type Locker interface {
	Acquire(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Release(ctx context.Context, userID uint, token string) error
}

// UserLookup resolves the submitting user's profile for gender gating and
// DOB fallback. Implemented by repository.UserRepository.
type UserLookup interface {
	FindByID(id uint) (*model.User, error)
}

type AssessmentService struct {
	Catalog *catalog.Registry
	Meta    MetaStore
	Locker  Locker
	Users   UserLookup

	retries int
	lockTTL time.Duration
	now     func() time.Time
	log     *zap.Logger
}

func NewAssessmentService(reg *catalog.Registry, meta MetaStore, locker Locker, users UserLookup, retries, lockTTLSeconds int) *AssessmentService {
	log := logger.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &AssessmentService{
		Catalog: reg,
		Meta:    meta,
		Locker:  locker,
		Users:   users,
		retries: retries,
		lockTTL: time.Duration(lockTTLSeconds) * time.Second,
		now:     time.Now,
		log:     log,
	}
}

// Retune adjusts the retry budget and lock TTL, for config hot-reload.
func (s *AssessmentService) Retune(retries, lockTTLSeconds int) {
	if retries > 0 {
		s.retries = retries
	}
	if lockTTLSeconds > 0 {
		s.lockTTL = time.Duration(lockTTLSeconds) * time.Second
	}
}

// AssessmentSummary is the catalog view exposed to clients.
type AssessmentSummary struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Gender      model.Gender `json:"gender,omitempty"`
	Questions   int          `json:"questions"`
}

// ListAssessments returns the catalog, filtered to assessments applicable to
// the given gender (empty = no filter).
func (s *AssessmentService) ListAssessments(gender model.Gender) []AssessmentSummary {
	var out []AssessmentSummary
	for _, a := range s.Catalog.Assessments() {
		if a.Gender != "" && gender != "" && a.Gender != gender {
			continue
		}
		out = append(out, AssessmentSummary{
			Key:         a.Key,
			Title:       a.Title,
			Description: a.Description,
			Gender:      a.Gender,
			Questions:   len(a.Questions),
		})
	}
	return out
}

// GetQuestions returns the renderable question list for one assessment.
// Scoring rules are stripped: clients never see point values.
func (s *AssessmentService) GetQuestions(key string) ([]catalog.Question, error) {
	a, ok := s.Catalog.Assessment(key)
	if !ok {
		return nil, util.ErrUnknownAssessment
	}
	out := make([]catalog.Question, len(a.Questions))
	for i, q := range a.Questions {
		q.Scoring = nil
		out[i] = q
	}
	return out, nil
}

// SubmitAssessment runs one full scoring pass for a user: category scores,
// pillar scores, symptom merge, penalty adjustment, life score and biomarker
// flags, computed in memory and written back as one versioned batch.
//
// Concurrent submissions by the same user are serialized by a per-user
// advisory lock; the versioned write-back catches anything the lock misses
// and the pass is retried from a fresh read, bounded by the configured retry
// budget, after which the conflict surfaces to the caller.
func (s *AssessmentService) SubmitAssessment(ctx context.Context, userID uint, key string, rawAnswers map[string]json.RawMessage) (*model.SubmissionResult, error) {
	a, ok := s.Catalog.Assessment(key)
	if !ok {
		return nil, util.ErrUnknownAssessment
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if a.Gender != "" && user.Gender != "" && a.Gender != user.Gender {
		return nil, util.ErrAssessmentGender
	}

	token, err := s.Locker.Acquire(ctx, userID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	defer s.Locker.Release(ctx, userID, token)

	answers := scoring.DecodeAnswers(rawAnswers)
	now := s.now()

	var result *model.SubmissionResult
	for attempt := 0; attempt < s.retries; attempt++ {
		result, err = s.runPass(userID, a, rawAnswers, answers, now)
		if errors.Is(err, util.ErrConcurrentUpdate) {
			monitoring.ConflictRetryCounter.Inc()
			s.log.Warn("submission write-back conflict, retrying",
				zap.Uint("userId", userID),
				zap.String("assessment", key),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		break
	}
	if err != nil {
		monitoring.SubmissionCounter.WithLabelValues(key, "error").Inc()
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(key, "ok").Inc()
	monitoring.FlagCounter.Add(float64(len(result.NewFlags)))
	for _, w := range result.Warnings {
		s.log.Warn("submission data-quality gap",
			zap.Uint("userId", userID),
			zap.String("assessment", key),
			zap.String("detail", w),
		)
	}
	return result, nil
}

// passState is everything one pass reads from the store, with the versions
// the write-back must still observe.
type passState struct {
	symptoms        []model.Symptom
	symptomsVer     int
	flags           []model.BiomarkerFlag
	flagsVer        int
	history         []model.ScoreHistoryEntry
	historyVer      int
	answersVer      int
	pillarVer       int
	avgVer          int
	lifeVer         int
	otherAssessment []model.PillarScores
}

func (s *AssessmentService) readState(userID uint, key string) (*passState, error) {
	st := &passState{}
	var err error

	if st.symptomsVer, err = s.getJSON(userID, model.MetaKeySymptoms, &st.symptoms); err != nil {
		return nil, err
	}
	if st.flagsVer, err = s.getJSON(userID, model.MetaKeyFlags, &st.flags); err != nil {
		return nil, err
	}
	if st.historyVer, err = s.getJSON(userID, model.MetaKeyScoreHistory, &st.history); err != nil {
		return nil, err
	}
	if _, st.answersVer, err = s.Meta.Get(userID, model.AnswersKey(key)); err != nil {
		return nil, err
	}
	if _, st.pillarVer, err = s.Meta.Get(userID, model.PillarScoresKey(key)); err != nil {
		return nil, err
	}
	if _, st.avgVer, err = s.Meta.Get(userID, model.MetaKeyAveragePillar); err != nil {
		return nil, err
	}
	if _, st.lifeVer, err = s.Meta.Get(userID, model.MetaKeyLifeScore); err != nil {
		return nil, err
	}

	for _, other := range s.Catalog.Assessments() {
		if other.Key == key {
			continue
		}
		var scores model.PillarScores
		if _, err := s.getJSON(userID, model.PillarScoresKey(other.Key), &scores); err != nil {
			return nil, err
		}
		if len(scores) > 0 {
			st.otherAssessment = append(st.otherAssessment, scores)
		}
	}
	return st, nil
}

func (s *AssessmentService) getJSON(userID uint, key string, dest interface{}) (int, error) {
	raw, version, err := s.Meta.Get(userID, key)
	if err != nil || raw == nil {
		return version, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupted blob is unrecoverable by retrying; start the key over
		// rather than failing every future submission.
		s.log.Error("corrupted meta value, resetting", zap.Uint("userId", userID), zap.String("key", key), zap.Error(err))
		return version, nil
	}
	return version, nil
}

func (s *AssessmentService) runPass(userID uint, a catalog.Assessment, rawAnswers map[string]json.RawMessage, answers scoring.AnswerSet, now time.Time) (*model.SubmissionResult, error) {
	st, err := s.readState(userID, a.Key)
	if err != nil {
		return nil, err
	}

	var warnings []string

	categories, w := scoring.ScoreCategories(a, answers, now)
	warnings = append(warnings, w...)

	pillars, w := scoring.MapPillars(categories, s.Catalog)
	warnings = append(warnings, w...)

	reports := symptom.Extract(a, answers)
	mergedSymptoms, newNames := symptom.Merge(st.symptoms, reports, a.Key, now)

	perAssessment := append([]model.PillarScores{}, st.otherAssessment...)
	if len(pillars) > 0 {
		perAssessment = append(perAssessment, pillars)
	}
	average := scoring.AveragePillars(perAssessment)

	adjusted, w := symptom.ApplyPenalties(average, mergedSymptoms, s.Catalog)
	warnings = append(warnings, w...)

	life := scoring.LifeScore(adjusted)

	newFlags := symptom.ResolveFlags(mergedSymptoms, st.flags, s.Catalog, now)
	allFlags := append(append([]model.BiomarkerFlag{}, st.flags...), newFlags...)

	writes, err := buildWrites(a.Key, st, rawAnswers, pillars, mergedSymptoms, allFlags, adjusted, life, now)
	if err != nil {
		return nil, err
	}
	if err := s.Meta.WriteBatch(userID, writes); err != nil {
		return nil, err
	}

	return &model.SubmissionResult{
		AssessmentKey:  a.Key,
		CategoryScores: categories,
		PillarScores:   pillars,
		AveragePillars: adjusted,
		LifeScore:      life,
		NewSymptoms:    newNames,
		NewFlags:       newFlags,
		Warnings:       warnings,
	}, nil
}

func buildWrites(key string, st *passState, rawAnswers map[string]json.RawMessage, pillars model.PillarScores, symptoms []model.Symptom, flags []model.BiomarkerFlag, average model.PillarScores, life float64, now time.Time) ([]model.MetaWrite, error) {
	marshal := func(v interface{}) (json.RawMessage, error) {
		b, err := json.Marshal(v)
		return json.RawMessage(b), err
	}

	history := append(st.history, model.ScoreHistoryEntry{
		AssessmentKey: key,
		LifeScore:     life,
		Pillars:       average,
		RecordedAt:    now,
	})
	if len(history) > model.ScoreHistoryLimit {
		history = history[len(history)-model.ScoreHistoryLimit:]
	}

	entries := []struct {
		key     string
		value   interface{}
		version int
	}{
		{model.AnswersKey(key), rawAnswers, st.answersVer},
		{model.PillarScoresKey(key), pillars, st.pillarVer},
		{model.MetaKeySymptoms, symptoms, st.symptomsVer},
		{model.MetaKeyFlags, flags, st.flagsVer},
		{model.MetaKeyAveragePillar, average, st.avgVer},
		{model.MetaKeyLifeScore, model.LifeScore{Value: life, UpdatedAt: now}, st.lifeVer},
		{model.MetaKeyScoreHistory, history, st.historyVer},
	}

	writes := make([]model.MetaWrite, 0, len(entries))
	for _, e := range entries {
		raw, err := marshal(e.value)
		if err != nil {
			return nil, err
		}
		writes = append(writes, model.MetaWrite{Key: e.key, Value: raw, ExpectedVersion: e.version})
	}
	return writes, nil
}
