package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/resume-coach/internal/gaps"
	"github.com/jordan/resume-coach/internal/types"
)

var (
	checklistBreakdownPath string
	checklistBenchmarkPath string
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Generate a gap checklist offline from JSON files",
	Long:  `Generate the prioritized gap checklist from a score breakdown file and a benchmark candidate file, without starting the server or calling any AI model.`,
	RunE:  runChecklist,
}

func init() {
	checklistCmd.Flags().StringVar(&checklistBreakdownPath, "breakdown", "", "Path to score breakdown JSON file (required)")
	checklistCmd.Flags().StringVar(&checklistBenchmarkPath, "benchmark", "", "Path to benchmark candidate JSON file (required)")
	_ = checklistCmd.MarkFlagRequired("breakdown")
	_ = checklistCmd.MarkFlagRequired("benchmark")
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(_ *cobra.Command, _ []string) error {
	var breakdown types.MatchScoreBreakdown
	if err := readJSONFile(checklistBreakdownPath, &breakdown); err != nil {
		return err
	}

	var benchmark types.BenchmarkCandidate
	if err := readJSONFile(checklistBenchmarkPath, &benchmark); err != nil {
		return err
	}

	checklist, err := gaps.BuildChecklist(&breakdown, &benchmark)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(checklist)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
