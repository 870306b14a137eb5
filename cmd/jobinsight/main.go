// Package main provides the entry point for the job insight CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobinsight",
	Short: "Job posting analysis and resume matching",
	Long:  "Jobinsight extracts keywords from job postings, synthesizes tailored talking points, scores resumes against postings and scrapes supported job boards.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
