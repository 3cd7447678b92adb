package model

import "time"

// Pillar is one of the four top-level health dimensions that category scores
// aggregate into.
type Pillar string

const (
	PillarMind       Pillar = "Mind"
	PillarBody       Pillar = "Body"
	PillarLifestyle  Pillar = "Lifestyle"
	PillarAesthetics Pillar = "Aesthetics"
)

// Pillars lists all pillars in display order.
var Pillars = []Pillar{PillarMind, PillarBody, PillarLifestyle, PillarAesthetics}

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "Monthly"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyDaily   Frequency = "Daily"
)

var severityRank = map[Severity]int{
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
}

var frequencyRank = map[Frequency]int{
	FrequencyMonthly: 1,
	FrequencyWeekly:  2,
	FrequencyDaily:   3,
}

func (s Severity) Rank() int  { return severityRank[s] }
func (f Frequency) Rank() int { return frequencyRank[f] }

func (s Severity) Valid() bool  { return severityRank[s] != 0 }
func (f Frequency) Valid() bool { return frequencyRank[f] != 0 }

// MaxSeverity returns the more severe of a and b.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// MaxFrequency returns the more frequent of a and b.
func MaxFrequency(a, b Frequency) Frequency {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// CategoryScores maps a scoring category to its weighted-average score for
// one assessment. Categories with no answered questions are absent, not zero.
type CategoryScores map[string]float64

// PillarScores maps a pillar to its 0-10 score. Pillars untouched by the
// underlying assessments are absent.
type PillarScores map[Pillar]float64

// Clone returns a copy safe to mutate.
func (p PillarScores) Clone() PillarScores {
	out := make(PillarScores, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Symptom is one entry of a user's centralized symptom aggregate. Intensity
// merges monotonically across assessments: severity and frequency never
// decrease from repeated reporting.
type Symptom struct {
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Severity          Severity  `json:"severity"`
	Frequency         Frequency `json:"frequency"`
	FirstReported     time.Time `json:"firstReported"`
	LastUpdated       time.Time `json:"lastUpdated"`
	SourceAssessments []string  `json:"sourceAssessments"`
}

// HasSource reports whether the symptom was already reported by the given
// assessment.
func (s *Symptom) HasSource(assessmentKey string) bool {
	for _, k := range s.SourceAssessments {
		if k == assessmentKey {
			return true
		}
	}
	return false
}

type FlagStatus string

const (
	FlagActive   FlagStatus = "active"
	FlagResolved FlagStatus = "resolved"
)

// FlagSourceAuto marks flags created by the resolver, as opposed to manual
// clinician flags.
const FlagSourceAuto = "auto-flagged from symptom"

// BiomarkerFlag marks a lab biomarker that should be prioritized for testing
// for a user. Flags are only ever created by the engine; clearing one is an
// explicit clinician action.
type BiomarkerFlag struct {
	ID                string     `json:"id"`
	Biomarker         string     `json:"biomarker"`
	Status            FlagStatus `json:"status"`
	Reason            string     `json:"reason"`
	TriggeringSymptom string     `json:"triggeringSymptom"`
	Source            string     `json:"source"`
	CreatedAt         time.Time  `json:"createdAt"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy        uint       `json:"resolvedBy,omitempty"`
}

// ScoreHistoryEntry records one recompute of the life score, keyed by the
// submission that triggered it.
type ScoreHistoryEntry struct {
	AssessmentKey string       `json:"assessmentKey"`
	LifeScore     float64      `json:"lifeScore"`
	Pillars       PillarScores `json:"pillars"`
	RecordedAt    time.Time    `json:"recordedAt"`
}

// ScoreHistoryLimit caps the recompute trail kept per user; older entries
// roll off.
const ScoreHistoryLimit = 200

// LifeScore is the persisted aggregate score snapshot.
type LifeScore struct {
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmissionResult is what a completed scoring pass returns to the caller.
/// It is always best-effort: data gaps reduce the result, never abort it.
type SubmissionResult struct {
	AssessmentKey  string          `json:"assessmentKey"`
	CategoryScores CategoryScores  `json:"categoryScores"`
	PillarScores   PillarScores    `json:"pillarScores"`
	AveragePillars PillarScores    `json:"averagePillarScores"`
	LifeScore      float64         `json:"lifeScore"`
	NewSymptoms    []string        `json:"newSymptoms"`
	NewFlags       []BiomarkerFlag `json:"newFlags"`
	Warnings       []string        `json:"warnings,omitempty"`
}
