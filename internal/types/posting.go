package types

import "time"

// ParsedPosting represents a job posting extracted from a supported job board.
// Required fields degrade to "Unknown ..." sentinels rather than being absent.
// A posting is built fresh per fetch and never mutated afterwards.
type ParsedPosting struct {
	Source      string            `json:"source"`
	URL         string            `json:"url"`
	JobTitle    string            `json:"jobTitle"`
	Company     string            `json:"company"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	Salary      string            `json:"salary,omitempty"`
	JobType     string            `json:"jobType,omitempty"`
	Criteria    map[string]string `json:"criteria,omitempty"`
	ScrapedAt   time.Time         `json:"scrapedAt"`
}
