package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobinsight/internal/types"
)

// indeedParser extracts postings from Indeed job pages.
type indeedParser struct{}

func (p *indeedParser) Site() string { return "Indeed" }

func (p *indeedParser) Parse(doc *goquery.Document, url string) *types.ParsedPosting {
	posting := &types.ParsedPosting{
		Source:      "indeed.com",
		URL:         url,
		JobTitle:    fieldOr(doc, ".jobsearch-JobInfoHeader-title", unknownPosition),
		Company:     fieldOr(doc, ".jobsearch-InlineCompanyRating-companyName", unknownCompany),
		Location:    fieldOr(doc, ".jobsearch-JobInfoHeader-subtitle .jobsearch-JobInfoHeader-locationName", unknownLocation),
		Description: strings.TrimSpace(doc.Find("#jobDescriptionText").Text()),
		ScrapedAt:   time.Now().UTC(),
	}

	// Salary and job type share the metadata header; tell them apart by
	// content. The checks are independent: one item can carry both.
	doc.Find(".jobsearch-JobMetadataHeader-item").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if posting.Salary == "" && strings.Contains(text, "$") {
			posting.Salary = text
		}
		if posting.JobType == "" && (strings.Contains(text, "time") || strings.Contains(text, "contract")) {
			posting.JobType = text
		}
		return posting.Salary == "" || posting.JobType == ""
	})

	return posting
}
