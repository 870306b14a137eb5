// Package analyzer exposes the engine entry points: analyze raw job text
// into a JobAnalysis, scrape-and-parse a supported job board URL, and score
// a resume against an analysis. The engine is stateless: every call reads
// only its arguments and the static vocabulary and template banks, so a
// single Engine is safe for concurrent use.
package analyzer

import (
	"context"

	"github.com/jonathan/jobinsight/internal/extract"
	"github.com/jonathan/jobinsight/internal/match"
	"github.com/jonathan/jobinsight/internal/narrative"
	"github.com/jonathan/jobinsight/internal/scrape"
	"github.com/jonathan/jobinsight/internal/types"
)

// Options configures engine construction.
type Options struct {
	// Rand overrides the synthesizer's random source; nil uses the
	// process-wide source.
	Rand narrative.Source
	// Fetch overrides the fetch options; nil uses defaults.
	Fetch *scrape.Options
	// UseBrowser enables the headless-browser fallback for job boards that
	// render postings client-side.
	UseBrowser bool
}

// Engine bundles the extraction, synthesis, scraping and scoring components.
type Engine struct {
	registry   *scrape.Registry
	fetcher    *scrape.Fetcher
	synth      *narrative.Synthesizer
	useBrowser bool
}

// New creates an Engine. A nil options pointer means all defaults.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}

	synth := narrative.New()
	if opts.Rand != nil {
		synth = narrative.NewWithSource(opts.Rand)
	}

	return &Engine{
		registry:   scrape.NewRegistry(),
		fetcher:    scrape.NewFetcher(opts.Fetch),
		synth:      synth,
		useBrowser: opts.UseBrowser,
	}
}

// AnalyzeJobText analyzes raw job posting text. It never fails: empty or
// unrecognizable text yields the extraction sentinels and keyword-free
// narratives.
func (e *Engine) AnalyzeJobText(text string) *types.JobAnalysis {
	keywords := extract.Keywords(text)
	problems, impacts, caseStudies, conclusion, actions := e.synth.Synthesize(keywords)

	return &types.JobAnalysis{
		JobTitle:    extract.Title(text),
		Company:     extract.Company(text),
		Problems:    problems,
		Impacts:     impacts,
		CaseStudies: caseStudies,
		Conclusion:  conclusion,
		Actions:     actions,
	}
}

// AnalyzeResume scores a resume against a previously produced JobAnalysis.
func (e *Engine) AnalyzeResume(resumeText string, job *types.JobAnalysis) *types.ResumeAnalysis {
	return match.Score(job, resumeText)
}

// ScrapeAndParse fetches a job posting URL and parses it with the site's
// parser. Failures are one of *scrape.UnsupportedSourceError,
// *scrape.FetchError or *scrape.ParseError; no retries are made and nothing
// is cached.
func (e *Engine) ScrapeAndParse(ctx context.Context, url string) (*types.ParsedPosting, error) {
	parser, err := e.registry.Resolve(url)
	if err != nil {
		return nil, err
	}

	doc, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	posting, err := e.registry.Parse(parser, doc, url)
	if err != nil {
		return nil, err
	}

	// Some boards serve a shell page to plain HTTP clients and fill the
	// posting in with JavaScript; re-render in a browser when enabled.
	if e.useBrowser && scrape.ShouldUseBrowser(posting.Description) {
		html, renderErr := scrape.RenderWithBrowser(ctx, url, 0)
		if renderErr != nil {
			return posting, nil // keep the HTTP result
		}
		renderedDoc, parseErr := scrape.ParseDocument(html)
		if parseErr != nil {
			return posting, nil
		}
		if rendered, err := e.registry.Parse(parser, renderedDoc, url); err == nil &&
			len(rendered.Description) > len(posting.Description) {
			posting = rendered
		}
	}

	return posting, nil
}

// SupportedSites returns the job-board domains the engine can scrape.
func (e *Engine) SupportedSites() []string {
	return e.registry.SupportedSites()
}
