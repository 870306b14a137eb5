package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobinsight/internal/types"
)

// glassdoorParser extracts postings from Glassdoor job pages. Glassdoor uses
// generated class names, so the selectors here are brittle by nature and the
// sentinels do most of the work when the markup shifts.
type glassdoorParser struct{}

func (p *glassdoorParser) Site() string { return "Glassdoor" }

func (p *glassdoorParser) Parse(doc *goquery.Document, url string) *types.ParsedPosting {
	posting := &types.ParsedPosting{
		Source:      "glassdoor.com",
		URL:         url,
		JobTitle:    fieldOr(doc, ".e1tk4kwz4", unknownPosition),
		Company:     fieldOr(doc, ".e1tk4kwz5", unknownCompany),
		Location:    fieldOr(doc, ".e1tk4kwz6", unknownLocation),
		Description: strings.TrimSpace(doc.Find(".jobDescriptionContent").Text()),
		ScrapedAt:   time.Now().UTC(),
	}

	doc.Find(".css-1bluz6i").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.Contains(text, "$") {
			posting.Salary = text
			return false
		}
		return true
	})

	return posting
}
