package models

import (
	"fmt"
	"strings"
)

// QuestionSet is an ordered, immutable set of exactly three project questions.
type QuestionSet [3]string

func (qs QuestionSet) Slice() []string {
	out := make([]string, len(qs))
	copy(out, qs[:])
	return out
}

type Verdict string

const (
	VerdictBelowAverage Verdict = "Below Average"
	VerdictAverage      Verdict = "Average"
	VerdictGood         Verdict = "Good"
)

// Verdicts lists the closed verdict set. "Below Average" precedes "Average"
// so prefix matching never picks the shorter literal.
var Verdicts = []Verdict{VerdictBelowAverage, VerdictAverage, VerdictGood}

// ParseVerdict matches s case-insensitively against the closed verdict set.
func ParseVerdict(s string) (Verdict, error) {
	s = strings.Join(strings.Fields(s), " ")
	for _, v := range Verdicts {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown verdict %q", s)
}

// InterviewReport is the synthesized evaluation. Text always ends with the
// "Final Verdict:" section carrying the canonical Verdict literal.
type InterviewReport struct {
	Text    string
	Verdict Verdict
}
