package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobinsight/internal/config"
	"github.com/jonathan/jobinsight/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Run the HTTP API server exposing analyze, match and scrape endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveBrowser    bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: PORT env var or 8080)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Use headless browser for JavaScript-rendered boards")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Port: servePort}
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	port := cfg.Port
	if port == 0 {
		if envPort, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			port = envPort
		} else {
			port = 8080
		}
	}

	srv := server.New(server.Config{
		Port:       port,
		UseBrowser: serveBrowser || cfg.UseBrowser,
	})
	return srv.Start()
}
