// Package main provides the entry point for the Resume Coach HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_coach",
	Short: "Resume Coach gap analysis service",
	Long:  "Resume Coach scores a resume against a job posting and produces a prioritized gap checklist, served over a REST API or run offline from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
