// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/jobinsight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeEntries(sb *strings.Builder, heading string, entries []types.Entry, limit int) {
	if len(entries) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(entries), limit)
	for i := 0; i < count; i++ {
		title := entries[i].Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", title))
	}
	if len(entries) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-limit))
	}
	sb.WriteString("\n")
}

// PrintJobAnalysis outputs a human-readable summary of an analyzed job posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", analysis.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", analysis.JobTitle))
	sb.WriteString("\n")

	writeEntries(&sb, "Problems", analysis.Problems, 3)
	writeEntries(&sb, "Impacts", analysis.Impacts, 3)
	writeEntries(&sb, "Case Studies", analysis.CaseStudies, 3)
	writeEntries(&sb, "Recommended Actions", analysis.Actions, maxItemsToShow)

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeAnalysis outputs the match score and keyword breakdown.
func (p *Printer) PrintResumeAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match Score: %d%%\n\n", analysis.MatchScore))

	writeList := func(heading string, items []string, limit int) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(heading + ":\n")
		count := min(len(items), limit)
		for i := 0; i < count; i++ {
			item := items[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(items) > limit {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
		}
		sb.WriteString("\n")
	}

	writeList("Matched Keywords", analysis.KeywordMatches.Matched, maxItemsToShow)
	writeList("Missing Keywords", analysis.KeywordMatches.Missing, maxItemsToShow)
	writeList("Strengths", analysis.StrengthAreas, 3)
	writeList("Improvements", analysis.ImprovementAreas, 3)
	writeList("ATS Recommendations", analysis.ATSRecommendations, 3)

	p.printBox("RESUME MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParsedPosting outputs a scraped job posting summary.
func (p *Printer) PrintParsedPosting(posting *types.ParsedPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", posting.Source))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", posting.JobTitle))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", posting.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n", posting.Location))
	if posting.Salary != "" {
		sb.WriteString(fmt.Sprintf("Salary:   %s\n", posting.Salary))
	}
	if posting.JobType != "" {
		sb.WriteString(fmt.Sprintf("Type:     %s\n", posting.JobType))
	}

	if len(posting.Criteria) > 0 {
		sb.WriteString("\nCriteria:\n")
		keys := make([]string, 0, len(posting.Criteria))
		for k := range posting.Criteria {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", k, posting.Criteria[k]))
		}
	}

	sb.WriteString(fmt.Sprintf("\nDescription: %d characters", len(posting.Description)))

	p.printBox("SCRAPED JOB POSTING", sb.String())
}
