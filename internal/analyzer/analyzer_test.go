package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobinsight/internal/scrape"
)

// firstSource always picks index 0, pinning synthesis.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func TestAnalyzeJobText(t *testing.T) {
	e := New(&Options{Rand: firstSource{}})

	text := "Senior Software Engineer\nCompany: Acme Corp.\nRequirements: Python, Kubernetes\nBuild things."
	analysis := e.AnalyzeJobText(text)
	require.NotNil(t, analysis)

	assert.Equal(t, "Senior Software Engineer", analysis.JobTitle)
	assert.Equal(t, "Acme Corp", analysis.Company)
	assert.Len(t, analysis.Problems, 6)
	assert.Len(t, analysis.Impacts, 6)
	assert.Len(t, analysis.CaseStudies, 8)
	assert.Len(t, analysis.Actions, 5)
	assert.NotEmpty(t, analysis.Conclusion)
}

func TestAnalyzeJobText_EmptyInput(t *testing.T) {
	e := New(nil)
	analysis := e.AnalyzeJobText("")

	assert.Equal(t, "Position", analysis.JobTitle)
	assert.Equal(t, "Organization", analysis.Company)
	assert.Len(t, analysis.Problems, 6)
	assert.Len(t, analysis.Actions, 5)
}

func TestAnalyzeResume(t *testing.T) {
	e := New(&Options{Rand: firstSource{}})
	job := e.AnalyzeJobText("Senior Python Developer\nPython and AWS expertise.")

	result := e.AnalyzeResume("Years of experience with Python and AWS projects.", job)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.KeywordMatches.Matched)
	assert.Greater(t, result.MatchScore, 0)
}

func TestScrapeAndParse_UnsupportedSource(t *testing.T) {
	e := New(nil)

	_, err := e.ScrapeAndParse(context.Background(), "https://www.monster.com/job/1")
	var unsupported *scrape.UnsupportedSourceError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSupportedSites(t *testing.T) {
	e := New(nil)
	assert.Equal(t, []string{"linkedin.com", "indeed.com", "glassdoor.com"}, e.SupportedSites())
}
