package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeJobRequest_Validate(t *testing.T) {
	valid := &AnalyzeJobRequest{Text: "Senior Engineer wanted"}
	assert.NoError(t, valid.Validate())

	empty := &AnalyzeJobRequest{}
	assert.Error(t, empty.Validate())
}

func TestAnalyzeResumeRequest_Validate(t *testing.T) {
	valid := &AnalyzeResumeRequest{
		ResumeText:  "My resume",
		JobAnalysis: &JobAnalysis{JobTitle: "Engineer"},
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&AnalyzeResumeRequest{ResumeText: "My resume"}).Validate())
	assert.Error(t, (&AnalyzeResumeRequest{JobAnalysis: &JobAnalysis{}}).Validate())
}

func TestScrapeRequest_Validate(t *testing.T) {
	valid := &ScrapeRequest{URL: "https://www.linkedin.com/jobs/view/123"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&ScrapeRequest{}).Validate())
	assert.Error(t, (&ScrapeRequest{URL: "not a url"}).Validate())
}
