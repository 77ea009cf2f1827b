package gaps

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jordan/resume-coach/internal/types"
)

const maxExperienceDetailGaps = 2

// ExperienceGaps emits gap actions when the candidate's experience level is
// below the benchmark. It produces nothing for aligned or above matches.
func ExperienceGaps(categories *types.ScoreCategories, _ *types.BenchmarkCandidate) []types.GapAction {
	exp := categories.Experience
	if exp.LevelMatch != "below" {
		return nil
	}

	actions := []types.GapAction{{
		ID:       uuid.New().String(),
		GapType:  types.GapTypeExperience,
		Severity: types.SeverityMedium,
		Issue: fmt.Sprintf("You have %d years of experience; benchmark candidates for this role have around %d",
			exp.UserYears, exp.BenchmarkRange.Median),
		Impact:            "Could improve your match score by ~3-5%",
		Action:            types.ActionReorganize,
		ActionDescription: "Restructure your experience section to lead with your most senior, highest-impact work so the years gap reads as depth rather than absence.",
		Section:           types.SectionExperience,
		Alternatives: []types.Alternative{
			{
				Type:        "ownership-verbs",
				Description: "Open bullets with ownership verbs (led, owned, drove) to signal seniority beyond years.",
			},
			{
				Type:        "quantify-scope",
				Description: "Quantify the scope you operated at: team size, budget, user counts.",
			},
		},
		UIOrder: 0,
	}}

	for i, gap := range exp.Gaps {
		if i >= maxExperienceDetailGaps {
			break
		}
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeExperience,
			Severity:          types.SeverityLow,
			Issue:             gap,
			Impact:            "Could improve your match score by ~1-2%",
			Action:            types.ActionStrengthen,
			ActionDescription: "Strengthen existing bullets that touch this area, or add one that addresses it directly.",
			Section:           types.SectionExperience,
			UIOrder:           len(actions),
		})
	}

	return actions
}
