package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/model"
)

// ScoreCategories reduces one submission to category scores. Each scored,
// answered question contributes weight*points to its category; the score is
// the weighted average sum(w*p)/sum(w), so categories stay on a comparable
// scale regardless of how many questions feed them. Categories with no
// answered questions are omitted entirely: unanswered is not worst-case.
//
// Returned warnings describe data-quality gaps (unparseable DOB, questions
// skipped for bad input); they never abort the pass.
func ScoreCategories(a catalog.Assessment, answers AnswerSet, now time.Time) (model.CategoryScores, []string) {
	totals := make(map[string]float64)
	weightSums := make(map[string]float64)
	var warnings []string

	for _, q := range a.Questions {
		rule := q.Scoring
		if rule == nil {
			continue
		}
		ans, ok := answers[q.ID]
		if !ok || ans.IsNone() {
			continue
		}

		points, ok, warn := questionPoints(q, *rule, ans, now)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if !ok {
			continue
		}

		totals[rule.Category] += rule.Weight * points
		weightSums[rule.Category] += rule.Weight
	}

	scores := make(model.CategoryScores, len(totals))
	for category, total := range totals {
		if weightSums[category] == 0 {
			continue
		}
		scores[category] = total / weightSums[category]
	}
	return scores, warnings
}

func questionPoints(q catalog.Question, rule catalog.ScoringRule, ans AnswerValue, now time.Time) (float64, bool, string) {
	if rule.Calculation == catalog.CalcAgeFromDOB {
		dob, ok := ans.DOB()
		if !ok {
			return 0, false, fmt.Sprintf("question %s: missing or unparseable date of birth", q.ID)
		}
		points, ok := resolveAgeScore(rule.AgeScores, AgeAt(dob, now))
		if !ok {
			return 0, false, fmt.Sprintf("question %s: no age bracket covers age %d", q.ID, AgeAt(dob, now))
		}
		return points, true, ""
	}

	switch q.Type {
	case catalog.TypeMultiselect:
		// Scalar answers to a multiselect are malformed input: treat as no
		// selection and keep going.
		if ans.Kind != KindList {
			return 0, false, ""
		}
		sum := 0.0
		for _, v := range ans.List {
			sum += rule.Answers[v] // missing key contributes 0
		}
		return sum, true, ""
	default:
		if ans.Kind != KindScalar {
			return 0, false, ""
		}
		// Missing key scores 0: an unscored or invalid option still counts
		// as an answered question for the weight sum.
		return rule.Answers[ans.Scalar], true, ""
	}
}

// AgeAt computes age in whole years at the reference time.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// resolveAgeScore maps an age into an inclusive bracket ("18-25", "76+").
func resolveAgeScore(ageScores map[string]float64, age int) (float64, bool) {
	for bracket, points := range ageScores {
		lo, hi, ok := parseBracket(bracket)
		if !ok {
			continue
		}
		if age >= lo && age <= hi {
			return points, true
		}
	}
	return 0, false
}

func parseBracket(bracket string) (lo, hi int, ok bool) {
	if open, found := strings.CutSuffix(bracket, "+"); found {
		n, err := strconv.Atoi(open)
		if err != nil {
			return 0, 0, false
		}
		return n, 1<<31 - 1, true
	}
	parts := strings.SplitN(bracket, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(parts[0])
	hi, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
