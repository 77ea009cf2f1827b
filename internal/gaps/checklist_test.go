package gaps

import (
	"testing"

	"github.com/jordan/resume-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChecklist_ValidationErrors(t *testing.T) {
	_, err := BuildChecklist(nil, &types.BenchmarkCandidate{})
	assert.ErrorIs(t, err, ErrMissingCategories)

	_, err = BuildChecklist(&types.MatchScoreBreakdown{}, &types.BenchmarkCandidate{})
	assert.ErrorIs(t, err, ErrMissingCategories)

	_, err = BuildChecklist(&types.MatchScoreBreakdown{Categories: &types.ScoreCategories{}}, nil)
	assert.ErrorIs(t, err, ErrMissingBenchmark)
}

func TestBuildChecklist_CapAndOrdering(t *testing.T) {
	// Engineered to produce 17 candidate gaps across all four generators:
	// keywords 4 high + 2 medium, accomplishments 1 high + 2 medium + 2 low,
	// experience 1 medium + 2 low, format 2 medium + 1 low.
	breakdown := &types.MatchScoreBreakdown{Categories: &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Go", Criticality: "must-have"},
				{Keyword: "Kubernetes", Criticality: "must-have"},
				{Keyword: "PostgreSQL", Criticality: "must-have"},
				{Keyword: "Terraform", Criticality: "must-have"},
				{Keyword: "Kafka", Criticality: "must-have"},
				{Keyword: "gRPC", Criticality: "must-have"},
				{Keyword: "Redis", Criticality: "nice-to-have"},
				{Keyword: "GraphQL", Criticality: "nice-to-have"},
				{Keyword: "Elasticsearch", Criticality: "nice-to-have"},
			},
		},
		Accomplishments: types.AccomplishmentCategory{
			Score: 40,
			AccomplishmentTypes: []types.AccomplishmentCheck{
				{Type: "team_leadership", Found: false},
				{Type: "revenue_impact", Found: false},
				{Type: "cost_savings", Found: false},
			},
			MissingMetrics: []string{"latency", "throughput", "cost"},
		},
		Experience: types.ExperienceCategory{
			LevelMatch:     "below",
			UserYears:      2,
			BenchmarkRange: types.BenchmarkRange{Median: 6},
			Gaps:           []string{"No on-call experience", "No cross-team work", "No budget ownership"},
		},
		ATSCompliance: types.ATSCategory{
			Issues:          []string{"Remove the photo"},
			SectionsMissing: []string{"Professional Summary"},
			Warnings:        []string{"Dense paragraphs"},
		},
	}}
	benchmark := &types.BenchmarkCandidate{
		ExpectedAccomplishments: []types.ExpectedAccomplishment{
			{Type: "team_leadership", Description: "leading teams", ExampleBullet: "Led a team"},
			{Type: "revenue_impact", Description: "moving revenue", ExampleBullet: "Grew revenue"},
		},
	}

	checklist, err := BuildChecklist(breakdown, benchmark)
	require.NoError(t, err)

	assert.Equal(t, 17, checklist.TotalGaps)
	assert.Len(t, checklist.Items, MaxChecklistItems)
	assert.Equal(t, 5, checklist.HighPriorityCount)

	// All high precede all medium precede all low, and uiOrder is 0..n-1.
	prevRank := -1
	for i, item := range checklist.Items {
		assert.Equal(t, i, item.UIOrder)
		assert.GreaterOrEqual(t, item.Severity.Rank(), prevRank, "severity out of order at %d", i)
		prevRank = item.Severity.Rank()
		assert.NotEmpty(t, item.ID)
	}
}

func TestBuildChecklist_StableTieBreakByGeneratorOrder(t *testing.T) {
	// Two medium gaps from different generators: keyword (nice-to-have) runs
	// before format, so it must come first.
	breakdown := &types.MatchScoreBreakdown{Categories: &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Redis", Criticality: "nice-to-have"},
			},
		},
		Accomplishments: types.AccomplishmentCategory{Score: 90},
		Experience:      types.ExperienceCategory{LevelMatch: "aligned"},
		ATSCompliance:   types.ATSCategory{Issues: []string{"Remove the photo"}},
	}}

	checklist, err := BuildChecklist(breakdown, &types.BenchmarkCandidate{})
	require.NoError(t, err)

	require.Len(t, checklist.Items, 2)
	assert.Equal(t, types.GapTypeKeyword, checklist.Items[0].GapType)
	assert.Equal(t, types.GapTypeFormat, checklist.Items[1].GapType)
}

func TestBuildChecklist_EndToEndSingleKeyword(t *testing.T) {
	breakdown := &types.MatchScoreBreakdown{Categories: &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			Score: 70,
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Kubernetes", Criticality: "must-have"},
			},
		},
		Experience:      types.ExperienceCategory{Score: 80, LevelMatch: "aligned"},
		Accomplishments: types.AccomplishmentCategory{Score: 80, HasMetrics: true},
		ATSCompliance:   types.ATSCategory{Score: 95},
	}}
	benchmark := &types.BenchmarkCandidate{
		CoreSkills: []types.CoreSkill{{
			Skill:             "Kubernetes",
			Criticality:       "must-have",
			WhyMatters:        "All workloads are containerized",
			EvidenceOfMastery: "Deployed prod clusters",
		}},
	}

	checklist, err := BuildChecklist(breakdown, benchmark)
	require.NoError(t, err)

	require.Len(t, checklist.Items, 1)
	item := checklist.Items[0]
	assert.Equal(t, types.SeverityHigh, item.Severity)
	assert.Equal(t, types.ActionAdd, item.Action)
	assert.Contains(t, item.ActionDescription, "Deployed prod clusters")
	assert.Equal(t, types.SectionSkills, item.Section)
	assert.Equal(t, 1, checklist.TotalGaps)
	assert.Equal(t, 1, checklist.HighPriorityCount)
}

func TestBuildChecklist_EmptyCategoriesSucceed(t *testing.T) {
	checklist, err := BuildChecklist(
		&types.MatchScoreBreakdown{Categories: &types.ScoreCategories{
			Keywords:        types.KeywordCategory{Score: 100},
			Experience:      types.ExperienceCategory{Score: 100, LevelMatch: "aligned"},
			Accomplishments: types.AccomplishmentCategory{Score: 100},
			ATSCompliance:   types.ATSCategory{Score: 100},
		}},
		&types.BenchmarkCandidate{},
	)
	require.NoError(t, err)
	assert.NotNil(t, checklist.Items)
	assert.Empty(t, checklist.Items)
	assert.Zero(t, checklist.TotalGaps)
	assert.Zero(t, checklist.HighPriorityCount)
}
