package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/jobinsight/internal/vocabulary"
)

// tokenSplitter separates text into whole tokens for single-word vocabulary
// matching. Matching against tokens rather than substrings keeps short terms
// like "AI" or "Go" from firing inside unrelated words.
var tokenSplitter = regexp.MustCompile(`[\s,;:.!?()\[\]{}'"/\\<>]+`)

// skillSectionRules capture the free-text remainder of a skills lead-in line.
var skillSectionRules = []rule{
	{re: regexp.MustCompile(`(?i)required skills:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)skills:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)requirements:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)qualifications:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)experience with:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)experience in:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)proficient in:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)knowledge of:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
	{re: regexp.MustCompile(`(?i)familiarity with:?\s*([\w\s,;.]+?)(?:\n|\.)`), group: 1},
}

// keywordSet accumulates keywords with case-insensitive set semantics while
// preserving discovery order.
type keywordSet struct {
	seen  map[string]bool
	order []string
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]bool)}
}

func (s *keywordSet) add(kw string) {
	key := strings.ToLower(kw)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, kw)
}

// Keywords extracts the deduplicated keyword sequence for a text blob:
// controlled-vocabulary terms (whole-token for single words, containment for
// phrases) plus free-text skills captured after lead-in markers. The result
// is sorted by descending length, ties keeping discovery order, so that
// downstream slot-filling sees the most specific terms first.
func Keywords(text string) []string {
	found := newKeywordSet()

	tokens := make(map[string]bool)
	for _, tok := range tokenSplitter.Split(text, -1) {
		if tok != "" {
			tokens[strings.ToLower(tok)] = true
		}
	}
	lowerText := strings.ToLower(text)

	for _, term := range vocabulary.Terms {
		if strings.Contains(term, " ") {
			if strings.Contains(lowerText, strings.ToLower(term)) {
				found.add(term)
			}
		} else if tokens[strings.ToLower(term)] {
			found.add(term)
		}
	}

	for _, r := range skillSectionRules {
		captured := r.candidate(text)
		if captured == "" {
			continue
		}
		for _, piece := range strings.FieldsFunc(captured, func(c rune) bool {
			return c == ',' || c == ';' || c == '.'
		}) {
			piece = strings.TrimSpace(piece)
			if len(piece) > 2 {
				found.add(piece)
			}
		}
	}

	sorted := found.order
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}
