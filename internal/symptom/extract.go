// Package symptom extracts self-reported symptoms from assessment answers,
// maintains the per-user centralized symptom aggregate, deducts pillar
// integrity penalties and correlates symptoms to biomarker flags.
package symptom

import (
	"sort"
	"time"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
	"life_score_backend/internal/scoring"
)

// Report is one symptom selection parsed out of a single submission, before
// it is merged into the user's aggregate.
type Report struct {
	Name      string
	Category  string
	Severity  model.Severity
	Frequency model.Frequency
}

// Extract parses the symptom-bearing multiselects of one submission.
// Severity and frequency come from the conventional companion questions and
// default to Moderate/Monthly when unanswered. The "none" sentinel is
// mutually exclusive and wins: if present, the whole question contributes
// nothing regardless of co-selections. Non-list answers are treated as no
// selection.
func Extract(a catalog.Assessment, answers scoring.AnswerSet) []Report {
	var reports []Report
	for _, q := range a.Questions {
		if !q.CapturesSymptoms {
			continue
		}
		ans := answers[q.ID]
		if ans.Kind != scoring.KindList || ans.Contains(catalog.NoneOption) {
			continue
		}

		severity := companionSeverity(answers[q.SeverityQuestionID()])
		frequency := companionFrequency(answers[q.FrequencyQuestionID()])

		seen := make(map[string]bool, len(ans.List))
		for _, name := range ans.List {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			reports = append(reports, Report{
				Name:      name,
				Category:  q.SymptomCategory,
				Severity:  severity,
				Frequency: frequency,
			})
		}
	}
	return reports
}

func companionSeverity(ans scoring.AnswerValue) model.Severity {
	if ans.Kind == scoring.KindScalar {
		if s := model.Severity(ans.Scalar); s.Valid() {
			return s
		}
	}
	return model.SeverityModerate
}

func companionFrequency(ans scoring.AnswerValue) model.Frequency {
	if ans.Kind == scoring.KindScalar {
		if f := model.Frequency(ans.Scalar); f.Valid() {
			return f
		}
	}
	return model.FrequencyMonthly
}

// Merge folds one submission's reports into the user's aggregate. New
// symptoms are created with firstReported=now; existing ones get
// lastUpdated=now, the source assessment added, and severity/frequency
// upgraded to the more severe of (existing, new). The merge is monotonic: a
// re-report at lower intensity never downgrades the record. The returned
// slice is sorted by name for stable persistence; newNames lists symptoms
// first seen in this pass.
func Merge(existing []model.Symptom, reports []Report, assessmentKey string, now time.Time) (merged []model.Symptom, newNames []string) {
	index := make(map[string]int, len(existing))
	merged = make([]model.Symptom, len(existing))
	copy(merged, existing)
	for i := range merged {
		index[merged[i].Name] = i
	}

	for _, r := range reports {
		if i, ok := index[r.Name]; ok {
			cur := &merged[i]
			cur.Severity = model.MaxSeverity(cur.Severity, r.Severity)
			cur.Frequency = model.MaxFrequency(cur.Frequency, r.Frequency)
			cur.LastUpdated = now
			if !cur.HasSource(assessmentKey) {
				cur.SourceAssessments = append(cur.SourceAssessments, assessmentKey)
			}
			continue
		}
		merged = append(merged, model.Symptom{
			Name:              r.Name,
			Category:          r.Category,
			Severity:          r.Severity,
			Frequency:         r.Frequency,
			FirstReported:     now,
			LastUpdated:       now,
			SourceAssessments: []string{assessmentKey},
		})
		index[r.Name] = len(merged) - 1
		newNames = append(newNames, r.Name)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged, newNames
}
