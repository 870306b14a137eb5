package scrape

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobinsight/internal/types"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		url  string
		site string
	}{
		{"https://www.linkedin.com/jobs/view/123", "LinkedIn"},
		{"https://indeed.com/viewjob?jk=abc", "Indeed"},
		{"https://jobs.indeed.com/viewjob?jk=abc", "Indeed"},
		{"https://www.glassdoor.com/job-listing/xyz", "Glassdoor"},
	}
	for _, tt := range tests {
		parser, err := r.Resolve(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.site, parser.Site(), tt.url)
	}
}

func TestRegistry_ResolveUnsupported(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("https://www.monster.com/job/123")
	require.Error(t, err)

	var unsupported *UnsupportedSourceError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "unsupported job board. Currently supported: linkedin.com, indeed.com, glassdoor.com", err.Error())
}

func TestRegistry_ResolveInvalidURL(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("not a url")
	var unsupported *UnsupportedSourceError
	assert.ErrorAs(t, err, &unsupported)
}

func TestRegistry_SupportedSites(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"linkedin.com", "indeed.com", "glassdoor.com"}, r.SupportedSites())
}

// panicParser blows up during Parse to exercise the recovery boundary.
type panicParser struct{}

func (p *panicParser) Site() string { return "Boom" }

func (p *panicParser) Parse(*goquery.Document, string) *types.ParsedPosting {
	panic("selector exploded")
}

func TestRegistry_ParseRecoversPanic(t *testing.T) {
	r := NewRegistry()
	doc, err := ParseDocument("<html><body></body></html>")
	require.NoError(t, err)

	posting, err := r.Parse(&panicParser{}, doc, "https://example.com")
	assert.Nil(t, posting)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Boom", parseErr.Site)
	assert.Equal(t, "failed to parse Boom job posting", err.Error())
}

func TestRegistry_ParsePassesThrough(t *testing.T) {
	r := NewRegistry()
	doc, err := ParseDocument(`<html><body><h1 class="top-card-layout__title">SRE</h1></body></html>`)
	require.NoError(t, err)

	parser, err := r.Resolve("https://www.linkedin.com/jobs/view/1")
	require.NoError(t, err)

	posting, err := r.Parse(parser, doc, "https://www.linkedin.com/jobs/view/1")
	require.NoError(t, err)
	assert.Equal(t, "SRE", posting.JobTitle)
}
