package gaps

import (
	"testing"

	"github.com/jordan/resume-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestKeywordGaps_MustHaveCap(t *testing.T) {
	categories := &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Go", Criticality: "must-have"},
				{Keyword: "Kubernetes", Criticality: "must-have"},
				{Keyword: "PostgreSQL", Criticality: "must-have"},
				{Keyword: "Terraform", Criticality: "must-have"},
				{Keyword: "Kafka", Criticality: "must-have"},
				{Keyword: "gRPC", Criticality: "must-have"},
			},
		},
	}

	actions := KeywordGaps(categories, &types.BenchmarkCandidate{})

	assert.Len(t, actions, 4)
	for _, a := range actions {
		assert.Equal(t, types.SeverityHigh, a.Severity)
		assert.Equal(t, types.ActionAdd, a.Action)
		assert.Equal(t, types.GapTypeKeyword, a.GapType)
	}
}

func TestKeywordGaps_NiceToHaveCap(t *testing.T) {
	categories := &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Redis", Criticality: "nice-to-have"},
				{Keyword: "GraphQL", Criticality: "nice-to-have"},
				{Keyword: "Elasticsearch", Criticality: "nice-to-have"},
			},
		},
	}

	actions := KeywordGaps(categories, &types.BenchmarkCandidate{})

	assert.Len(t, actions, 2)
	for _, a := range actions {
		assert.Equal(t, types.SeverityMedium, a.Severity)
		assert.Contains(t, a.Impact, "1-2%")
	}
}

func TestKeywordGaps_BenchmarkEnrichment(t *testing.T) {
	categories := &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			MissingByPriority: []types.PrioritizedKeyword{
				{Keyword: "Kubernetes", Criticality: "must-have"},
			},
		},
	}
	benchmark := &types.BenchmarkCandidate{
		CoreSkills: []types.CoreSkill{
			{
				Skill:             "kubernetes", // case-insensitive match
				Criticality:       "must-have",
				WhyMatters:        "All services run on managed clusters",
				EvidenceOfMastery: "Deployed prod clusters",
			},
		},
	}

	actions := KeywordGaps(categories, benchmark)

	assert.Len(t, actions, 1)
	assert.Contains(t, actions[0].ActionDescription, "Deployed prod clusters")
	if assert.Len(t, actions[0].Alternatives, 1) {
		assert.Equal(t, "why-it-matters", actions[0].Alternatives[0].Type)
		assert.Contains(t, actions[0].Alternatives[0].Description, "managed clusters")
	}
}

func TestKeywordGaps_SectionRouting(t *testing.T) {
	assert.Equal(t, types.SectionSkills, keywordSection("Kubernetes"))
	assert.Equal(t, types.SectionExperience, keywordSection("Managed cloud migrations"))
	assert.Equal(t, types.SectionExperience, keywordSection("Shipped features"))
	assert.Equal(t, types.SectionExperience, keywordSection("ARCHITECTED")) // case-insensitive
	assert.Equal(t, types.SectionSkills, keywordSection("PostgreSQL"))
}

func TestKeywordGaps_Empty(t *testing.T) {
	actions := KeywordGaps(&types.ScoreCategories{}, &types.BenchmarkCandidate{})
	assert.Empty(t, actions)
}
