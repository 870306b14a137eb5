package extract

import (
	"regexp"
	"strings"
)

// CompanyFallback is the sentinel returned when no company cascade tier matches.
const CompanyFallback = "Organization"

// Tier 1: explicit company indicators and header shapes.
var companyRules = []rule{
	{re: regexp.MustCompile(`(?i)company:?\s*([A-Z][A-Za-z0-9\s&.-]+?)(?:\.|,|\n|\s\(|\s-)`), group: 1},
	{re: regexp.MustCompile(`(?i)employer:?\s*([A-Z][A-Za-z0-9\s&.-]+?)(?:\.|,|\n|\s\(|\s-)`), group: 1},
	{re: regexp.MustCompile(`(?i)organization:?\s*([A-Z][A-Za-z0-9\s&.-]+?)(?:\.|,|\n|\s\(|\s-)`), group: 1},
	{re: regexp.MustCompile(`(?i)about\s+([A-Z][A-Za-z0-9\s&.-]+?)(?:\.|,|\n|\s\(|\s-)`), group: 1},
	{re: regexp.MustCompile(`(?i)about\s+the\s+company\s*(?:\n|:)\s*([A-Z][A-Za-z0-9\s&.-]+?)(?:\.|,|\n|\s\(|\s-)`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:at|with|for|join)\s+([A-Z][A-Za-z0-9\s&.-]+?)(?:\s+is|\s+as|\s+in|\.|,|\n)`), group: 1},
	{re: regexp.MustCompile(`(?m)^([A-Z][A-Za-z0-9\s&.-]+?)(?:\s+is|\s+a|\s+an|\s+-|\s+–|\n)`), group: 1},
	{re: regexp.MustCompile(`(?i)([A-Z][A-Za-z0-9\s&.-]+?)\s+(?:is\s+located|headquarters|based|located)\s+in`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:Engineer|Developer|Manager|Director|Specialist|Analyst|Designer|Architect)\s*(?:\(|\[|@)\s*([A-Z][A-Za-z0-9\s&.-]+?)(?:\)|\])`), group: 1},
}

// Tier 2: "X is a leading ..." style description openings.
var companyDescriptionRule = rule{
	re:    regexp.MustCompile(`(?i)([A-Z][A-Za-z0-9\s&.-]{2,40}?)\s+is\s+(?:a|an|one|the)`),
	group: 1,
}

// Tier 3: "About Us" sections.
var aboutSectionRule = rule{
	re:    regexp.MustCompile(`(?i)(?:About Us|About Our Company|About|Who We Are)(?:\n|:)\s*([A-Z][A-Za-z0-9\s&.-]+?)\s+is`),
	group: 1,
}

// nonCompanyWords are terms that regularly sit where a company name would:
// job-board names and generic section headers. A candidate equal to one of
// these (case-insensitively) is rejected and the cascade falls through.
var nonCompanyWords = map[string]bool{
	"position": true, "job": true, "role": true, "title": true,
	"overview": true, "summary": true, "description": true,
	"responsibilities": true, "requirements": true, "qualifications": true,
	"about": true, "the": true,
	"linkedin": true, "indeed": true, "glassdoor": true, "monster": true,
	"ziprecruiter": true, "dice": true,
}

func plausibleCompany(s string) bool {
	return !nonCompanyWords[strings.ToLower(s)]
}

// Company extracts the hiring organization's name from raw posting text.
// It never returns an empty string: when every tier misses, or the denylist
// rejects every candidate, it returns CompanyFallback.
func Company(text string) string {
	if c, ok := evalCascade(companyRules, text, plausibleCompany); ok {
		return c
	}
	if c, ok := evalCascade([]rule{companyDescriptionRule}, text, plausibleCompany); ok {
		return c
	}
	if c, ok := evalCascade([]rule{aboutSectionRule}, text, plausibleCompany); ok {
		return c
	}
	return CompanyFallback
}
