package gaps

import (
	"errors"
	"sort"

	"github.com/jordan/resume-coach/internal/types"
)

// MaxChecklistItems caps the returned checklist length.
const MaxChecklistItems = 10

// Validation errors for structurally-required inputs. Everything else
// degrades to safe defaults instead of failing.
var (
	ErrMissingCategories = errors.New("scoreBreakdown.categories is required")
	ErrMissingBenchmark  = errors.New("benchmark is required")
)

// Checklist is the aggregated, sorted, capped gap checklist.
type Checklist struct {
	Items             []types.GapAction `json:"items"`
	TotalGaps         int               `json:"totalGaps"`
	HighPriorityCount int               `json:"highPriorityCount"`
}

// generator is the shared shape of the four gap generators.
type generator func(*types.ScoreCategories, *types.BenchmarkCandidate) []types.GapAction

// generators run in fixed order; concatenation order is the tie-break for
// equal severities.
var generators = []generator{
	KeywordGaps,
	AccomplishmentGaps,
	ExperienceGaps,
	FormatGaps,
}

// BuildChecklist runs all generators, sorts high severity first with
// concatenation order as tie-break, caps at MaxChecklistItems, and renumbers
// UIOrder to the final positions. TotalGaps counts candidates before the cap;
// HighPriorityCount counts high-severity items in the returned list.
func BuildChecklist(breakdown *types.MatchScoreBreakdown, benchmark *types.BenchmarkCandidate) (*Checklist, error) {
	if breakdown == nil || breakdown.Categories == nil {
		return nil, ErrMissingCategories
	}
	if benchmark == nil {
		return nil, ErrMissingBenchmark
	}

	var all []types.GapAction
	for _, generate := range generators {
		for _, action := range generate(breakdown.Categories, benchmark) {
			action.UIOrder = len(all)
			all = append(all, action)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Severity.Rank() != all[j].Severity.Rank() {
			return all[i].Severity.Rank() < all[j].Severity.Rank()
		}
		return all[i].UIOrder < all[j].UIOrder
	})

	total := len(all)
	if len(all) > MaxChecklistItems {
		all = all[:MaxChecklistItems]
	}

	high := 0
	for i := range all {
		all[i].UIOrder = i
		if all[i].Severity == types.SeverityHigh {
			high++
		}
	}
	if all == nil {
		all = []types.GapAction{}
	}

	return &Checklist{
		Items:             all,
		TotalGaps:         total,
		HighPriorityCount: high,
	}, nil
}
