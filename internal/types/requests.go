package types

import "github.com/go-playground/validator/v10"

// AnalyzeJobRequest represents a request to analyze raw job posting text.
type AnalyzeJobRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// AnalyzeResumeRequest represents a request to score a resume against a
// previously analyzed job.
type AnalyzeResumeRequest struct {
	ResumeText  string       `json:"resume_text" validate:"required,min=1"`
	JobAnalysis *JobAnalysis `json:"job_analysis" validate:"required"`
}

// ScrapeRequest represents a request to fetch and parse a job posting URL.
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Validate validates the AnalyzeJobRequest using the validator.
func (r *AnalyzeJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScrapeRequest using the validator.
func (r *ScrapeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
