package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/jordan/resume-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBreakdown_NormalizesKeywordShapes(t *testing.T) {
	raw := `{
		"categories": {
			"keywords": {
				"score": 62,
				"matched": ["Go", {"keyword": "SQL"}, {"name": "AWS"}, {"bogus": true}],
				"missing": ["Kubernetes"],
				"missingByPriority": [
					{"keyword": "Kubernetes", "criticality": "must-have"},
					{"keyword": "Terraform", "criticality": "critical"},
					{"keyword": "", "criticality": "must-have"},
					"not an object"
				],
				"summary": "decent coverage"
			},
			"experience": {"score": 70, "userYears": 4, "levelMatch": "aligned"},
			"accomplishments": {"score": 55, "hasMetrics": false},
			"atsCompliance": {"score": 120}
		}
	}`

	breakdown, err := ParseBreakdown(raw)
	require.NoError(t, err)
	require.NotNil(t, breakdown.Categories)

	kw := breakdown.Categories.Keywords
	assert.Equal(t, 62, kw.Score)
	assert.Equal(t, []string{"Go", "SQL", "AWS"}, kw.Matched)
	assert.Equal(t, []string{"Kubernetes"}, kw.Missing)

	// Malformed priority entries dropped, vocabulary mapped to canonical enum.
	require.Len(t, kw.MissingByPriority, 2)
	assert.Equal(t, types.PrioritizedKeyword{Keyword: "Kubernetes", Criticality: "must-have"}, kw.MissingByPriority[0])
	assert.Equal(t, types.PrioritizedKeyword{Keyword: "Terraform", Criticality: "must-have"}, kw.MissingByPriority[1])

	// Out-of-range score clamped.
	assert.Equal(t, 100, breakdown.Categories.ATSCompliance.Score)
}

func TestParseBreakdown_MissingCategoriesFails(t *testing.T) {
	_, err := ParseBreakdown(`{"something": "else"}`)
	assert.Error(t, err)

	_, err = ParseBreakdown(`not json at all`)
	assert.Error(t, err)
}

func TestParseBreakdown_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"categories\": {\"keywords\": {\"score\": 50}, \"experience\": {}, \"accomplishments\": {}, \"atsCompliance\": {}}}\n```"

	breakdown, err := ParseBreakdown(raw)
	require.NoError(t, err)
	assert.Equal(t, 50, breakdown.Categories.Keywords.Score)
}

func TestParseBenchmark_DropsInvalidEntries(t *testing.T) {
	raw := `{
		"roleTitle": "Senior Backend Engineer",
		"seniorityLevel": "senior",
		"coreSkills": [
			{"skill": "Go", "criticality": "must-have", "whyMatters": "primary language", "evidenceOfMastery": "services in production"},
			{"criticality": "must-have"},
			{"skill": "Kafka", "criticality": "weird-value"}
		],
		"expectedAccomplishments": [
			{"type": "team_leadership", "exampleBullet": "Led a team of 5", "metricsToInclude": ["team size"]},
			{"description": "no type tag"}
		],
		"typicalMetrics": ["p99 latency", "cost per request"]
	}`

	benchmark, err := ParseBenchmark(raw)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", benchmark.RoleTitle)
	require.Len(t, benchmark.CoreSkills, 2)
	assert.Equal(t, "must-have", benchmark.CoreSkills[0].Criticality)
	// Unknown criticality degrades to nice-to-have rather than failing.
	assert.Equal(t, "nice-to-have", benchmark.CoreSkills[1].Criticality)

	require.Len(t, benchmark.ExpectedAccomplishments, 1)
	assert.Equal(t, "team_leadership", benchmark.ExpectedAccomplishments[0].Type)
	assert.Equal(t, []string{"team size"}, benchmark.ExpectedAccomplishments[0].MetricsToInclude)
	assert.Equal(t, []string{"p99 latency", "cost per request"}, benchmark.TypicalMetrics)
}

// stubClient returns canned responses keyed by a prompt substring.
type stubClient struct {
	breakdownJSON string
	benchmarkJSON string
	err           error
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if strings.Contains(prompt, "benchmark candidate") {
		return s.benchmarkJSON, nil
	}
	return s.breakdownJSON, nil
}

func (s *stubClient) Close() error { return nil }

func TestAnalyzer_Analyze(t *testing.T) {
	client := &stubClient{
		breakdownJSON: `{"categories": {"keywords": {"score": 70}, "experience": {"score": 80, "levelMatch": "aligned"}, "accomplishments": {"score": 60}, "atsCompliance": {"score": 90}}}`,
		benchmarkJSON: `{"roleTitle": "Platform Engineer", "coreSkills": [{"skill": "Go", "criticality": "must-have"}]}`,
	}

	breakdown, benchmark, err := NewAnalyzer(client).Analyze(context.Background(), "resume text", "job text")
	require.NoError(t, err)

	assert.Equal(t, 70, breakdown.Categories.Keywords.Score)
	assert.Equal(t, "Platform Engineer", benchmark.RoleTitle)
	require.Len(t, benchmark.CoreSkills, 1)
}

func TestAnalyzer_AnalyzePropagatesError(t *testing.T) {
	client := &stubClient{err: assert.AnError}

	_, _, err := NewAnalyzer(client).Analyze(context.Background(), "resume", "job")
	assert.Error(t, err)
}
