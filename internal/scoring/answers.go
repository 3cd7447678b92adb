// Package scoring converts raw questionnaire answers into category, pillar
// and life scores. Every function is pure over an injected catalog so the
// rules are testable with fixture configurations.
package scoring

import (
	"encoding/json"
	"time"
)

type AnswerKind int

const (
	KindNone AnswerKind = iota
	KindScalar
	KindList
	KindStructured
)

// AnswerValue is the decoded form of one submitted answer. Payloads come
// from free-form form submission, so decoding is tolerant: anything that
// does not match an expected shape collapses to KindNone rather than
// failing the submission.
type AnswerValue struct {
	Kind       AnswerKind
	Scalar     string
	List       []string
	Structured map[string]string
}

func (v AnswerValue) IsNone() bool { return v.Kind == KindNone }

// Contains reports whether a list answer includes the given value.
func (v AnswerValue) Contains(value string) bool {
	if v.Kind != KindList {
		return false
	}
	for _, s := range v.List {
		if s == value {
			return true
		}
	}
	return false
}

// AnswerSet holds all decoded answers of one submission, keyed by question id.
type AnswerSet map[string]AnswerValue

// DecodeAnswers decodes a raw submission payload. Individual malformed
// values decode to KindNone; they are kept in the set so callers can tell
// "answered badly" from "absent" if they care, though the engine treats
// both as no selection.
func DecodeAnswers(raw map[string]json.RawMessage) AnswerSet {
	out := make(AnswerSet, len(raw))
	for id, r := range raw {
		out[id] = DecodeAnswer(r)
	}
	return out
}

// DecodeAnswer decodes one value: a JSON string becomes a scalar, an array
// of strings a list, an object with string values a structured answer.
// Numbers are accepted as scalars since HTML forms blur the distinction.
func DecodeAnswer(raw json.RawMessage) AnswerValue {
	if len(raw) == 0 {
		return AnswerValue{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return AnswerValue{Kind: KindScalar, Scalar: s}
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return AnswerValue{Kind: KindScalar, Scalar: n.String()}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return AnswerValue{Kind: KindList, List: list}
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err == nil {
		return AnswerValue{Kind: KindStructured, Structured: m}
	}

	return AnswerValue{}
}

// DOB extracts a date of birth from a scalar or structured answer. Structured
// payloads use the "date" field ("2006-01-02"); scalars are parsed directly.
func (v AnswerValue) DOB() (time.Time, bool) {
	var raw string
	switch v.Kind {
	case KindScalar:
		raw = v.Scalar
	case KindStructured:
		raw = v.Structured["date"]
	default:
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
