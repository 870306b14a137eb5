// Package extract provides regex-cascade extraction of structured fields and
// controlled-vocabulary keywords from free-text job postings and resumes.
//
// A cascade is an ordered list of rules tried in sequence; the first rule
// producing a non-empty candidate that survives its filter wins, and later
// rules are never consulted. Extraction never fails: every cascade ends in a
// literal sentinel.
package extract

import (
	"regexp"
	"strings"
)

// rule is one step of an extraction cascade: a pattern and the index of the
// capture group holding the candidate (0 means the whole match).
type rule struct {
	re    *regexp.Regexp
	group int
}

// candidate returns the trimmed capture for the first match of the rule, or
// "" when the rule does not apply. An empty capture group counts as no match.
func (r rule) candidate(text string) string {
	m := r.re.FindStringSubmatch(text)
	if m == nil || r.group >= len(m) {
		return ""
	}
	return strings.TrimSpace(m[r.group])
}

// evalCascade walks the rules in order and returns the first candidate
// accepted by the filter. A nil filter accepts everything non-empty.
func evalCascade(rules []rule, text string, accept func(string) bool) (string, bool) {
	for _, r := range rules {
		c := r.candidate(text)
		if c == "" {
			continue
		}
		if accept == nil || accept(c) {
			return c, true
		}
	}
	return "", false
}
