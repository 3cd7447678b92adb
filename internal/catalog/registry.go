// Package catalog holds the static configuration tables the scoring and
// correlation engine runs against: question catalogs, scoring rules, the
// category-to-pillar assignment, the symptom-to-vector map, the penalty
// matrix and the vector-to-biomarker map. A Registry is immutable after
// construction and injected into the services, so tests run against fixture
// registries instead of the shipped tables.
package catalog

import "life_score_backend/internal/model"

type QuestionType string

const (
	TypeRadio        QuestionType = "radio"
	TypeMultiselect  QuestionType = "multiselect"
	TypeDOB          QuestionType = "dob"
	TypeHeightWeight QuestionType = "height_weight"
	TypeContactInfo  QuestionType = "contact_info"
)

// CalcAgeFromDOB marks a scoring rule whose points come from an age bracket
// rather than a direct answer lookup.
const CalcAgeFromDOB = "age_from_dob"

// NoneOption is the sentinel "none of the above" value in symptom
// multiselects. If present it wins over any co-selected symptoms.
const NoneOption = "none"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ScoringRule converts one question's answer into weighted category points.
type ScoringRule struct {
	Category    string             `json:"category"`
	Weight      float64            `json:"weight"`
	Answers     map[string]float64 `json:"answers,omitempty"`
	Calculation string             `json:"calculation,omitempty"`
	AgeScores   map[string]float64 `json:"ageScores,omitempty"`
}

type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Label   string       `json:"label"`
	Options []Option     `json:"options,omitempty"`
	Scoring *ScoringRule `json:"scoring,omitempty"`

	// CapturesSymptoms flags a multiselect whose selections feed the symptom
	// extractor. Severity and frequency come from companion questions named
	// "<id>_severity" and "<id>_frequency".
	CapturesSymptoms bool `json:"capturesSymptoms,omitempty"`
	// SymptomCategory labels symptoms extracted from this question.
	SymptomCategory string `json:"symptomCategory,omitempty"`
}

// SeverityQuestionID returns the conventional companion question id carrying
// the severity answer for a symptom question.
func (q Question) SeverityQuestionID() string { return q.ID + "_severity" }

// FrequencyQuestionID returns the conventional companion question id carrying
// the frequency answer for a symptom question.
func (q Question) FrequencyQuestionID() string { return q.ID + "_frequency" }

type Assessment struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Gender      model.Gender `json:"gender,omitempty"` // empty = any
	Questions   []Question   `json:"questions"`
}

// Question looks a question up by id.
func (a Assessment) Question(id string) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// PenaltyRule is one row of the penalty matrix: which pillar a vector
// deducts from, and the deduction for each severity/frequency combination.
// Values are fractions of a pillar point in [0,1]; the grid is constructed
// monotonic in both axes so the higher frequency always wins a severity tie.
type PenaltyRule struct {
	PillarImpact model.Pillar                                   `json:"pillarImpact"`
	Penalties    map[model.Severity]map[model.Frequency]float64 `json:"penalties"`
}

// Resolve returns the penalty for one severity/frequency pair, 0 when the
// pair is not covered by the grid.
func (r PenaltyRule) Resolve(sev model.Severity, freq model.Frequency) float64 {
	row, ok := r.Penalties[sev]
	if !ok {
		return 0
	}
	return row[freq]
}

// Data is the raw material a Registry is built from.
type Data struct {
	Assessments      []Assessment
	CategoryPillar   map[string]model.Pillar
	SymptomVectors   map[string][]string
	PenaltyMatrix    map[string]PenaltyRule
	VectorBiomarkers map[string][]string
}

type Registry struct {
	assessments      map[string]Assessment
	order            []string
	categoryPillar   map[string]model.Pillar
	symptomVectors   map[string][]string
	penaltyMatrix    map[string]PenaltyRule
	vectorBiomarkers map[string][]string
}

func NewRegistry(data Data) *Registry {
	r := &Registry{
		assessments:      make(map[string]Assessment, len(data.Assessments)),
		order:            make([]string, 0, len(data.Assessments)),
		categoryPillar:   data.CategoryPillar,
		symptomVectors:   data.SymptomVectors,
		penaltyMatrix:    data.PenaltyMatrix,
		vectorBiomarkers: data.VectorBiomarkers,
	}
	for _, a := range data.Assessments {
		r.assessments[a.Key] = a
		r.order = append(r.order, a.Key)
	}
	return r
}

func (r *Registry) Assessment(key string) (Assessment, bool) {
	a, ok := r.assessments[key]
	return a, ok
}

// Assessments returns the catalog in registration order.
func (r *Registry) Assessments() []Assessment {
	out := make([]Assessment, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.assessments[k])
	}
	return out
}

// PillarFor maps a scoring category to its pillar.
func (r *Registry) PillarFor(category string) (model.Pillar, bool) {
	p, ok := r.categoryPillar[category]
	return p, ok
}

// VectorsFor maps a symptom name to its health optimization vectors.
func (r *Registry) VectorsFor(symptom string) []string {
	return r.symptomVectors[symptom]
}

// PenaltyFor returns the penalty matrix row for a vector.
func (r *Registry) PenaltyFor(vector string) (PenaltyRule, bool) {
	rule, ok := r.penaltyMatrix[vector]
	return rule, ok
}

// BiomarkersFor returns the recommended biomarkers for a vector.
func (r *Registry) BiomarkersFor(vector string) []string {
	return r.vectorBiomarkers[vector]
}
