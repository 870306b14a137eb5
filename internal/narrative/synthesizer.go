package narrative

import (
	"math/rand/v2"
	"strings"

	"github.com/jonathan/jobinsight/internal/types"
)

const (
	slotKeyword1 = "{keyword1}"
	slotKeyword2 = "{keyword2}"

	problemTarget   = 6
	impactTarget    = 6
	caseStudyTarget = 8
	actionTarget    = 5
)

// Source supplies uniform random integers for slot filling. Inject a fixed
// source in tests to pin synthesis output.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) int
}

type systemSource struct{}

func (systemSource) IntN(n int) int { return rand.IntN(n) }

// Synthesizer generates narrative lists and a conclusion from the template
// banks. The zero value is not usable; construct with New or NewWithSource.
// A Synthesizer is stateless across calls and safe for concurrent use as
// long as its Source is.
type Synthesizer struct {
	rand Source
}

// New returns a Synthesizer backed by the process-wide random source.
func New() *Synthesizer {
	return NewWithSource(systemSource{})
}

// NewWithSource returns a Synthesizer using the given random source.
func NewWithSource(src Source) *Synthesizer {
	return &Synthesizer{rand: src}
}

// Synthesize builds the narrative sections of a JobAnalysis from a keyword
// sequence. Keywords are consumed in order, so callers should pass them
// most-specific first. An empty keyword set is legal: keyword slots are
// filled with the empty string and the lists still come out full length.
func (s *Synthesizer) Synthesize(keywords []string) (problems, impacts, caseStudies []types.Entry, conclusion string, actions []types.Entry) {
	problems = s.fillBank(problemBank, keywords, bankSpec{target: problemTarget, randomSecondSlot: true})
	impacts = s.fillBank(impactBank, keywords, bankSpec{target: impactTarget})
	caseStudies = s.fillBank(caseStudyBank, keywords, bankSpec{target: caseStudyTarget})
	conclusion = s.conclude(keywords)
	actions = s.fillBank(actionBank, keywords, bankSpec{target: actionTarget, slotInTitle: true})
	return problems, impacts, caseStudies, conclusion, actions
}

// bankSpec describes how a template bank is consumed.
type bankSpec struct {
	target           int
	slotInTitle      bool // action titles carry slots too
	randomSecondSlot bool // problems fill {keyword2} with a random keyword
}

// fillBank runs the two-pass fill over a bank. Pass one walks the keywords in
// order and consumes, per keyword, the first unused template with a keyword
// slot. Pass two walks the bank in declaration order and appends every
// still-unused template, substituting any slots with random keywords. No
// template title is used twice; a bank smaller than the target simply yields
// a shorter list.
func (s *Synthesizer) fillBank(bank []template, keywords []string, spec bankSpec) []types.Entry {
	out := make([]types.Entry, 0, spec.target)
	used := make(map[string]bool, len(bank))

	hasSlot := func(t template) bool {
		if strings.Contains(t.description, slotKeyword1) {
			return true
		}
		return spec.slotInTitle && strings.Contains(t.title, slotKeyword1)
	}

	for _, kw := range keywords {
		if len(out) >= spec.target {
			break
		}
		for _, t := range bank {
			if used[t.title] || !hasSlot(t) {
				continue
			}
			title := t.title
			if spec.slotInTitle {
				title = strings.Replace(title, slotKeyword1, kw, 1)
			}
			desc := strings.Replace(t.description, slotKeyword1, kw, 1)
			if spec.randomSecondSlot {
				desc = strings.Replace(desc, slotKeyword2, s.pick(keywords), 1)
			}
			out = append(out, types.Entry{Title: title, Description: desc})
			used[t.title] = true
			break
		}
	}

	for _, t := range bank {
		if len(out) >= spec.target {
			break
		}
		if used[t.title] {
			continue
		}
		title := t.title
		desc := t.description
		if hasSlot(t) {
			kw := s.pick(keywords)
			if spec.slotInTitle {
				title = strings.Replace(title, slotKeyword1, kw, 1)
			}
			desc = strings.Replace(desc, slotKeyword1, kw, 1)
			if spec.randomSecondSlot {
				desc = strings.Replace(desc, slotKeyword2, s.pick(keywords), 1)
			}
		}
		out = append(out, types.Entry{Title: title, Description: desc})
		used[t.title] = true
	}

	return out
}

// conclude picks one conclusion template at random and fills both slots with
// independently random keywords. Unlike the list banks there is no
// distinctness guarantee: the same keyword may land in both slots.
func (s *Synthesizer) conclude(keywords []string) string {
	sentence := conclusionBank[s.rand.IntN(len(conclusionBank))]
	sentence = strings.Replace(sentence, slotKeyword1, s.pick(keywords), 1)
	sentence = strings.Replace(sentence, slotKeyword2, s.pick(keywords), 1)
	return sentence
}

// pick returns a uniform random keyword, or "" for an empty set.
func (s *Synthesizer) pick(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return keywords[s.rand.IntN(len(keywords))]
}
