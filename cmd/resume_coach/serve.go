package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan/resume-coach/internal/config"
	"github.com/jordan/resume-coach/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the gap checklist, scoring, and analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	merged := cfg.MergeWithEnv()
	if err := merged.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         merged.Port,
		DatabaseURL:  merged.DatabaseURL,
		GeminiAPIKey: merged.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
