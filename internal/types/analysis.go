// Package types provides type definitions for structured data used throughout the jobinsight system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Entry is a single synthesized narrative item: a short title and a
// keyword-bound description.
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobAnalysis represents the full synthesized analysis of a job posting.
// Within each list the titles are pairwise distinct.
type JobAnalysis struct {
	JobTitle    string  `json:"jobTitle"`
	Company     string  `json:"company"`
	Problems    []Entry `json:"problems"`
	Impacts     []Entry `json:"impacts"`
	CaseStudies []Entry `json:"caseStudies"`
	Conclusion  string  `json:"conclusion"`
	Actions     []Entry `json:"actions"`
}

// KeywordMatches splits the job-side keyword set into the terms found in the
// resume and the terms the resume is missing.
type KeywordMatches struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ResumeAnalysis represents how well a resume matches an analyzed job.
// MatchScore is an integer percentage in [0, 100].
type ResumeAnalysis struct {
	MatchScore         int            `json:"matchScore"`
	KeywordMatches     KeywordMatches `json:"keywordMatches"`
	StrengthAreas      []string       `json:"strengthAreas"`
	ImprovementAreas   []string       `json:"improvementAreas"`
	ATSRecommendations []string       `json:"atsRecommendations"`
}
