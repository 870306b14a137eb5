package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobinsight/internal/analyzer"
	"github.com/jonathan/jobinsight/internal/config"
	"github.com/jonathan/jobinsight/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting into structured talking points",
	Long:  "Analyze a job posting (from a text file or a supported job board URL) into keywords, problems, impacts, case studies and recommended actions.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeConfigFile string
	analyzeOutputFile string
	analyzeBrowser    bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "url", "u", "", "Job posting URL to scrape")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Use headless browser for JavaScript-rendered boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted analysis summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Job: analyzeJobFile, JobURL: analyzeJobURL}
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --url is required")
	}

	engine := analyzer.New(&analyzer.Options{UseBrowser: analyzeBrowser || cfg.UseBrowser})

	text, err := loadJobText(context.Background(), engine, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	analysis := engine.AnalyzeJobText(text)

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJobAnalysis(analysis)
	}

	return writeJSON(analyzeOutputFile, analysis)
}

// loadJobText reads the posting from a file or scrapes it from a URL.
func loadJobText(ctx context.Context, engine *analyzer.Engine, jobFile, jobURL string) (string, error) {
	if jobFile != "" {
		content, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(content), nil
	}

	posting, err := engine.ScrapeAndParse(ctx, jobURL)
	if err != nil {
		return "", fmt.Errorf("failed to scrape job posting: %w", err)
	}
	return posting.JobTitle + "\n" + posting.Company + "\n\n" + posting.Description, nil
}

// writeJSON marshals v with indentation to a file, or stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
