package scrape

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobinsight/internal/types"
)

// linkedinParser extracts postings from LinkedIn job pages.
type linkedinParser struct{}

func (p *linkedinParser) Site() string { return "LinkedIn" }

var criteriaKeyCleaner = regexp.MustCompile(`\s+`)

func (p *linkedinParser) Parse(doc *goquery.Document, url string) *types.ParsedPosting {
	posting := &types.ParsedPosting{
		Source:      "linkedin.com",
		URL:         url,
		JobTitle:    fieldOr(doc, ".top-card-layout__title", unknownPosition),
		Company:     fieldOr(doc, ".topcard__org-name-link", unknownCompany),
		Location:    fieldOr(doc, ".topcard__flavor--bullet", unknownLocation),
		Description: strings.TrimSpace(doc.Find(".description__text").Text()),
		ScrapedAt:   time.Now().UTC(),
	}

	// Job criteria items (seniority level, employment type, ...)
	criteria := make(map[string]string)
	doc.Find(".description__job-criteria-item").Each(func(_ int, sel *goquery.Selection) {
		label := strings.TrimSpace(sel.Find(".description__job-criteria-subheader").Text())
		value := strings.TrimSpace(sel.Find(".description__job-criteria-text").Text())
		if label != "" && value != "" {
			key := criteriaKeyCleaner.ReplaceAllString(strings.ToLower(label), "_")
			criteria[key] = value
		}
	})
	if len(criteria) > 0 {
		posting.Criteria = criteria
	}

	return posting
}
