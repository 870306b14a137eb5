package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobinsight/internal/analyzer"
	"github.com/jonathan/jobinsight/internal/observability"
	"github.com/jonathan/jobinsight/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against an analyzed job posting",
	Long:  "Score a resume text file against a previously produced job analysis JSON and report matched and missing keywords, strengths, improvements and ATS recommendations.",
	RunE:  runMatch,
}

var (
	matchResumeFile   string
	matchAnalysisFile string
	matchOutputFile   string
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVarP(&matchAnalysisFile, "analysis", "a", "", "Path to job analysis JSON produced by 'analyze' (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	resumeContent, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	analysisContent, err := os.ReadFile(matchAnalysisFile)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}

	var job types.JobAnalysis
	if err := json.Unmarshal(analysisContent, &job); err != nil {
		return fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	engine := analyzer.New(nil)
	result := engine.AnalyzeResume(string(resumeContent), &job)

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeAnalysis(result)
	}

	return writeJSON(matchOutputFile, result)
}
