package extract

import (
	"regexp"
	"strings"
)

// TitleFallback is the sentinel returned when no title cascade tier matches.
const TitleFallback = "Position"

// Tier 1: canonical title shapes. The whole match is the candidate.
var titleShapeRules = []rule{
	// Standard titles with optional seniority and specialization
	{re: regexp.MustCompile(`(?i)\b(Senior|Lead|Principal|Junior|Associate|Staff|Chief|Head of|Director of)?\s*(Software|Frontend|Backend|Full[ -]Stack|DevOps|Cloud|Mobile|iOS|Android|Web|ML|AI|Data|Product|Project|Program|Technical|Developer|Community)?\s*(Engineer|Developer|Architect|Designer|Manager|Director|Specialist|Consultant|Analyst|Administrator|Coordinator|Lead|Scientist|Evangelist|Advocate|Relations)\b`)},
	// Technical leadership roles
	{re: regexp.MustCompile(`(?i)\b(Technical|Product|Project|Program)\s*(Manager|Director|Lead|Coordinator|Owner)\b`)},
	// Data science roles
	{re: regexp.MustCompile(`(?i)\b(Data|Machine Learning|AI|ML|Artificial Intelligence|Business Intelligence)\s*(Scientist|Engineer|Analyst|Architect|Specialist)\b`)},
	// Design roles
	{re: regexp.MustCompile(`(?i)\b(UX|UI|User Experience|User Interface|Interaction|Visual|Graphic)\s*(Designer|Researcher|Architect|Developer|Lead)\b`)},
	// Developer relations roles
	{re: regexp.MustCompile(`(?i)\b(DevRel|Developer Relations|Developer Advocate|Technical Evangelist|Community Manager|Developer Experience)\b`)},
	// Content roles
	{re: regexp.MustCompile(`(?i)\b(Technical|Content|Curriculum|Documentation)\s*(Writer|Author|Editor|Developer|Designer|Specialist|Manager)\b`)},
	// Sales and marketing
	{re: regexp.MustCompile(`(?i)\b(Sales|Marketing|Business|Account|Customer Success)\s*(Manager|Executive|Representative|Director|Coordinator)\b`)},
	// HR roles
	{re: regexp.MustCompile(`(?i)\b(HR|Human Resources|Talent|Recruiting|People)\s*(Manager|Specialist|Coordinator|Partner|Director)\b`)},
	// Operations roles
	{re: regexp.MustCompile(`(?i)\b(Operations|Finance|Legal|Support|IT|Information Technology)\s*(Manager|Specialist|Coordinator|Analyst|Director)\b`)},
	// C-suite
	{re: regexp.MustCompile(`(?i)\b(CEO|CTO|CIO|CFO|COO|CISO|CMO|CPO)\b`)},
	// Specific tech roles
	{re: regexp.MustCompile(`(?i)\b(Blockchain|Security|Network|Systems|Database|Frontend|Backend|Full[ -]Stack|Mobile|Cloud|DevOps|SRE|Site Reliability|QA|Quality Assurance|Test)\s*(Engineer|Developer|Architect|Specialist|Analyst|Administrator)\b`)},
}

// Tiers 2 and 3: explicit section markers and structural heuristics.
// The candidate is the first capture group.
var titleSectionRules = []rule{
	{re: regexp.MustCompile(`(?i)job title:?\s*([^\n.]+)`), group: 1},
	{re: regexp.MustCompile(`(?i)position:?\s*([^\n.]+)`), group: 1},
	{re: regexp.MustCompile(`(?i)role:?\s*([^\n.]+)`), group: 1},
	{re: regexp.MustCompile(`(?i)title:?\s*([^\n.]+)`), group: 1},
	// Title-shaped line at the start of the text
	{re: regexp.MustCompile(`(?m)^([A-Z][A-Za-z0-9\s&-]+?(?:Engineer|Developer|Manager|Director|Specialist|Analyst|Designer|Architect))\s*\n`), group: 1},
	// Title-shaped line framed by newlines
	{re: regexp.MustCompile(`(?m)\n\s*([A-Z][A-Za-z0-9\s&-]+?(?:Engineer|Developer|Manager|Director|Specialist|Analyst|Designer|Architect))\s*\n`), group: 1},
	// Title followed by a location preposition
	{re: regexp.MustCompile(`(?i)([A-Z][A-Za-z0-9\s&-]+?(?:Engineer|Developer|Manager|Director|Specialist|Analyst|Designer|Architect))\s*(?:in|at|for)\s`), group: 1},
}

// Tier 4: a title-cased first line of 4-51 characters taken verbatim.
var firstLineTitle = regexp.MustCompile(`^([A-Z][A-Za-z0-9\s&-]{3,50})$`)

// longEnough rejects degenerate matches like bare role nouns.
func longEnough(s string) bool { return len(s) > 3 }

// Title extracts the job title from raw posting text. It never returns an
// empty string: when every tier misses it returns TitleFallback.
func Title(text string) string {
	if t, ok := evalCascade(titleShapeRules, text, longEnough); ok {
		return t
	}
	if t, ok := evalCascade(titleSectionRules, text, longEnough); ok {
		return t
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	if m := firstLineTitle.FindStringSubmatch(firstLine); m != nil {
		return strings.TrimSpace(m[1])
	}
	return TitleFallback
}
