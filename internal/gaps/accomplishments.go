package gaps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jordan/resume-coach/internal/types"
)

const (
	accomplishmentScoreThreshold = 75
	accomplishmentHighSeverity   = 50
	maxMissingTypeGaps           = 2
	maxMissingMetricGaps         = 2
	maxExampleMetrics            = 3
)

// accomplishmentTypeLabels maps known snake_case accomplishment type tags to
// display labels. Unknown tags fall back to a generic title-case transform.
var accomplishmentTypeLabels = map[string]string{
	"revenue_impact":       "Revenue Impact",
	"cost_savings":         "Cost Savings",
	"team_leadership":      "Team Leadership",
	"process_improvement":  "Process Improvement",
	"scale_achievement":    "Scale Achievement",
	"technical_innovation": "Technical Innovation",
	"customer_impact":      "Customer Impact",
	"cross_functional":     "Cross-Functional Collaboration",
	"delivery_speed":       "Delivery Speed",
	"quality_improvement":  "Quality Improvement",
}

// AccomplishmentGaps emits gap actions for weak accomplishment evidence.
// When the category score is under 75 it emits a primary "add metrics" gap
// (high severity under 50, medium otherwise) plus up to 2 "add-new-bullet"
// gaps for accomplishment types the benchmark expects but the resume lacks.
// Missing-metric suggestions are emitted regardless of the score.
func AccomplishmentGaps(categories *types.ScoreCategories, benchmark *types.BenchmarkCandidate) []types.GapAction {
	acc := categories.Accomplishments
	var actions []types.GapAction

	if acc.Score < accomplishmentScoreThreshold {
		severity := types.SeverityMedium
		if acc.Score < accomplishmentHighSeverity {
			severity = types.SeverityHigh
		}

		primary := types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeAccomplishment,
			Severity:          severity,
			Issue:             "Your accomplishments lack quantified metrics",
			Impact:            "Could improve your match score by ~4-6%",
			Action:            types.ActionStrengthen,
			ActionDescription: "Rework your strongest bullets to state measurable outcomes: numbers, percentages, time saved, or dollars moved.",
			Section:           types.SectionExperience,
			ImprovementType:   "add-metrics",
			UIOrder:           len(actions),
		}
		for i, metric := range benchmark.TypicalMetrics {
			if i >= maxExampleMetrics {
				break
			}
			primary.Alternatives = append(primary.Alternatives, types.Alternative{
				Type:        "example-metric",
				Description: metric,
			})
		}
		actions = append(actions, primary)

		emitted := 0
		for _, check := range acc.AccomplishmentTypes {
			if check.Found || emitted >= maxMissingTypeGaps {
				continue
			}
			expected := benchmark.FindExpectedAccomplishment(check.Type)
			if expected == nil {
				continue
			}
			actions = append(actions, types.GapAction{
				ID:                uuid.New().String(),
				GapType:           types.GapTypeAccomplishment,
				Severity:          types.SeverityMedium,
				Issue:             fmt.Sprintf("No %s accomplishment on your resume", humanizeAccomplishmentType(check.Type)),
				Impact:            "Could improve your match score by ~2-4%",
				Action:            types.ActionAddNewBullet,
				ActionDescription: fmt.Sprintf("Candidates for this role typically show %s. Add a bullet along these lines if it reflects your work.", expected.Description),
				Section:           types.SectionExperience,
				SuggestedBullet:   expected.ExampleBullet,
				UIOrder:           len(actions),
			})
			emitted++
		}
	}

	for i, metric := range acc.MissingMetrics {
		if i >= maxMissingMetricGaps {
			break
		}
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeAccomplishment,
			Severity:          types.SeverityLow,
			Issue:             fmt.Sprintf("No %s metric anywhere on your resume", metric),
			Impact:            "Could improve your match score by ~1-2%",
			Action:            types.ActionStrengthen,
			ActionDescription: fmt.Sprintf("Look for an existing bullet you could quantify with a %s figure.", metric),
			Section:           types.SectionExperience,
			ImprovementType:   "add-metrics",
			UIOrder:           len(actions),
		})
	}

	return actions
}

// humanizeAccomplishmentType formats a snake_case type tag for display.
func humanizeAccomplishmentType(tag string) string {
	if label, ok := accomplishmentTypeLabels[tag]; ok {
		return label
	}
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
