package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobinsight/internal/types"
)

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(&types.JobAnalysis{
		JobTitle: "Senior Engineer",
		Company:  "Acme Corp",
		Problems: []types.Entry{
			{Title: "Technical Expertise Gap", Description: "..."},
		},
		Actions: []types.Entry{
			{Title: "Create a Go portfolio", Description: "..."},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Technical Expertise Gap")
	assert.Contains(t, output, "Create a Go portfolio")
}

func TestPrintJobAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResumeAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeAnalysis(&types.ResumeAnalysis{
		MatchScore: 72,
		KeywordMatches: types.KeywordMatches{
			Matched: []string{"Python", "AWS"},
			Missing: []string{"Kubernetes"},
		},
		StrengthAreas: []string{"Your experience level appears to match the job requirements."},
	})
	output := buf.String()

	assert.Contains(t, output, "RESUME MATCH")
	assert.Contains(t, output, "72%")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintResumeAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParsedPosting(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedPosting(&types.ParsedPosting{
		Source:      "linkedin.com",
		JobTitle:    "Data Engineer",
		Company:     "Initech",
		Location:    "Austin, TX",
		Salary:      "$95K",
		Description: "Pipelines and warehouses.",
		Criteria:    map[string]string{"employment_type": "Full-time"},
		ScrapedAt:   time.Now(),
	})
	output := buf.String()

	assert.Contains(t, output, "SCRAPED JOB POSTING")
	assert.Contains(t, output, "linkedin.com")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "$95K")
	assert.Contains(t, output, "employment_type")
}

func TestPrintParsedPosting_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedPosting(nil)

	assert.Empty(t, buf.String())
}
