// Package gaps generates the prioritized gap checklist from a score breakdown
// and a benchmark candidate profile. All generators are pure functions over
// in-memory data; they allocate fresh output and never mutate their inputs.
package gaps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jordan/resume-coach/internal/types"
)

const (
	maxMustHaveKeywordGaps   = 4
	maxNiceToHaveKeywordGaps = 2
)

// accomplishmentVerbs route a keyword to the experience section when it reads
// like something you demonstrate rather than list.
var accomplishmentVerbs = []string{
	"led", "managed", "delivered", "shipped", "launched", "mentored", "coached",
	"scaled", "optimized", "reduced", "increased", "improved", "built",
	"designed", "architected",
}

// KeywordGaps emits gap actions for missing keywords, partitioned by
// criticality: at most 4 must-have gaps (high severity) and 2 nice-to-have
// gaps (medium severity). Must-have gaps are enriched from the benchmark's
// core skills when the keyword matches one.
func KeywordGaps(categories *types.ScoreCategories, benchmark *types.BenchmarkCandidate) []types.GapAction {
	var mustHave, niceToHave []types.PrioritizedKeyword
	for _, kw := range categories.Keywords.MissingByPriority {
		if kw.Criticality == "must-have" {
			mustHave = append(mustHave, kw)
		} else {
			niceToHave = append(niceToHave, kw)
		}
	}

	actions := make([]types.GapAction, 0, maxMustHaveKeywordGaps+maxNiceToHaveKeywordGaps)

	for _, kw := range capKeywords(mustHave, maxMustHaveKeywordGaps) {
		action := types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeKeyword,
			Severity:          types.SeverityHigh,
			Issue:             fmt.Sprintf("Missing critical keyword: %q", kw.Keyword),
			Impact:            "Could improve your match score by ~3-5%",
			Action:            types.ActionAdd,
			ActionDescription: fmt.Sprintf("Add %q where you can back it up with real work.", kw.Keyword),
			SuggestedKeyword:  kw.Keyword,
			Section:           keywordSection(kw.Keyword),
			UIOrder:           len(actions),
		}

		if skill := benchmark.FindCoreSkill(kw.Keyword); skill != nil {
			if skill.EvidenceOfMastery != "" {
				action.ActionDescription += fmt.Sprintf(" Benchmark candidates demonstrate this through: %s", skill.EvidenceOfMastery)
			}
			if skill.WhyMatters != "" {
				action.Alternatives = append(action.Alternatives, types.Alternative{
					Type:        "why-it-matters",
					Description: skill.WhyMatters,
				})
			}
		}

		actions = append(actions, action)
	}

	for _, kw := range capKeywords(niceToHave, maxNiceToHaveKeywordGaps) {
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeKeyword,
			Severity:          types.SeverityMedium,
			Issue:             fmt.Sprintf("Missing nice-to-have keyword: %q", kw.Keyword),
			Impact:            "Could improve your match score by ~1-2%",
			Action:            types.ActionAdd,
			ActionDescription: fmt.Sprintf("Work %q into your resume if you have genuine exposure to it.", kw.Keyword),
			SuggestedKeyword:  kw.Keyword,
			Section:           keywordSection(kw.Keyword),
			UIOrder:           len(actions),
		})
	}

	return actions
}

// keywordSection routes a keyword to the experience section if it contains an
// accomplishment-indicating verb, otherwise to the skills section.
func keywordSection(keyword string) types.ResumeSection {
	lower := strings.ToLower(keyword)
	for _, verb := range accomplishmentVerbs {
		if strings.Contains(lower, verb) {
			return types.SectionExperience
		}
	}
	return types.SectionSkills
}

func capKeywords(keywords []types.PrioritizedKeyword, max int) []types.PrioritizedKeyword {
	if len(keywords) > max {
		return keywords[:max]
	}
	return keywords
}
