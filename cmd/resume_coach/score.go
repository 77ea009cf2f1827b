package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/resume-coach/internal/scoring"
)

var scoreSub scoring.SubScores

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the weighted overall score from four sub-scores",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().IntVar(&scoreSub.JDMatch, "jd-match", 0, "JD match sub-score (0-100)")
	scoreCmd.Flags().IntVar(&scoreSub.IndustryBenchmark, "industry-benchmark", 0, "Industry benchmark sub-score (0-100)")
	scoreCmd.Flags().IntVar(&scoreSub.ATSCompliance, "ats-compliance", 0, "ATS compliance sub-score (0-100)")
	scoreCmd.Flags().IntVar(&scoreSub.HumanVoice, "human-voice", 0, "Human voice sub-score (0-100)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	for _, v := range []int{scoreSub.JDMatch, scoreSub.IndustryBenchmark, scoreSub.ATSCompliance, scoreSub.HumanVoice} {
		if v < 0 || v > 100 {
			return fmt.Errorf("sub-scores must be between 0 and 100")
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(scoring.Summarize(scoreSub))
}
