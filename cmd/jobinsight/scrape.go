package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobinsight/internal/analyzer"
	"github.com/jonathan/jobinsight/internal/observability"
	"github.com/jonathan/jobinsight/internal/types"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url...]",
	Short: "Scrape job postings from supported job boards",
	Long:  "Scrape one or more job posting URLs from supported job boards (LinkedIn, Indeed, Glassdoor) into structured JSON. Multiple URLs are fetched concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScrape,
}

var (
	scrapeOutputFile  string
	scrapeBrowser     bool
	scrapeVerbose     bool
	scrapeConcurrency int
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scrapeCmd.Flags().BoolVar(&scrapeBrowser, "browser", false, "Use headless browser for JavaScript-rendered boards")
	scrapeCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print a formatted summary per posting")
	scrapeCmd.Flags().IntVar(&scrapeConcurrency, "concurrency", 3, "Maximum concurrent fetches")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, args []string) error {
	engine := analyzer.New(&analyzer.Options{UseBrowser: scrapeBrowser})

	postings := make([]*types.ParsedPosting, len(args))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(scrapeConcurrency)

	for i, url := range args {
		g.Go(func() error {
			posting, err := engine.ScrapeAndParse(ctx, url)
			if err != nil {
				return fmt.Errorf("%s: %w", url, err)
			}
			mu.Lock()
			postings[i] = posting
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if scrapeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, posting := range postings {
			printer.PrintParsedPosting(posting)
		}
	}

	if len(postings) == 1 {
		return writeJSON(scrapeOutputFile, postings[0])
	}
	return writeJSON(scrapeOutputFile, postings)
}
