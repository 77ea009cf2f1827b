package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jordan/resume-coach/internal/parsing"
	"github.com/jordan/resume-coach/internal/types"
)

// Analyzer runs the AI analysis step: one extraction for the score breakdown
// and one for the benchmark candidate, concurrently.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates an analyzer backed by the given client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze produces the score breakdown and benchmark profile for a resume
// against a job description. The two extractions run concurrently; the first
// error cancels the other.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.MatchScoreBreakdown, *types.BenchmarkCandidate, error) {
	var (
		breakdown *types.MatchScoreBreakdown
		benchmark *types.BenchmarkCandidate
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := a.client.GenerateJSON(ctx, fmt.Sprintf(breakdownPrompt, jobText, resumeText), TierStandard)
		if err != nil {
			return fmt.Errorf("breakdown extraction failed: %w", err)
		}
		breakdown, err = ParseBreakdown(raw)
		return err
	})
	g.Go(func() error {
		raw, err := a.client.GenerateJSON(ctx, fmt.Sprintf(benchmarkPrompt, jobText), TierAdvanced)
		if err != nil {
			return fmt.Errorf("benchmark extraction failed: %w", err)
		}
		benchmark, err = ParseBenchmark(raw)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return breakdown, benchmark, nil
}

// rawBreakdown mirrors the breakdown response but keeps the fields models get
// wrong most often as raw JSON so they can be normalized instead of trusted.
type rawBreakdown struct {
	Categories *struct {
		Keywords struct {
			Score             int             `json:"score"`
			Matched           json.RawMessage `json:"matched"`
			Missing           json.RawMessage `json:"missing"`
			MissingByPriority json.RawMessage `json:"missingByPriority"`
			Summary           string          `json:"summary"`
		} `json:"keywords"`
		Experience      types.ExperienceCategory     `json:"experience"`
		Accomplishments types.AccomplishmentCategory `json:"accomplishments"`
		ATSCompliance   types.ATSCategory            `json:"atsCompliance"`
	} `json:"categories"`
}

// ParseBreakdown parses a model-produced score breakdown, normalizing the
// keyword lists and clamping scores. Individually malformed keyword entries
// are dropped; a structurally missing categories object is an error.
func ParseBreakdown(raw string) (*types.MatchScoreBreakdown, error) {
	var doc rawBreakdown
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse breakdown JSON: %w", err)
	}
	if doc.Categories == nil {
		return nil, fmt.Errorf("breakdown response has no categories object")
	}

	kw := doc.Categories.Keywords
	categories := &types.ScoreCategories{
		Keywords: types.KeywordCategory{
			Score:             clampScore(kw.Score),
			Matched:           keywordNames(kw.Matched),
			Missing:           keywordNames(kw.Missing),
			MissingByPriority: prioritizedKeywords(kw.MissingByPriority),
			Summary:           kw.Summary,
		},
		Experience:      doc.Categories.Experience,
		Accomplishments: doc.Categories.Accomplishments,
		ATSCompliance:   doc.Categories.ATSCompliance,
	}
	categories.Experience.Score = clampScore(categories.Experience.Score)
	categories.Accomplishments.Score = clampScore(categories.Accomplishments.Score)
	categories.ATSCompliance.Score = clampScore(categories.ATSCompliance.Score)

	return &types.MatchScoreBreakdown{Categories: categories}, nil
}

// ParseBenchmark parses a model-produced benchmark profile. Core skills and
// expected accomplishments missing their identifying field are dropped.
func ParseBenchmark(raw string) (*types.BenchmarkCandidate, error) {
	var doc struct {
		RoleTitle               string          `json:"roleTitle"`
		SeniorityLevel          string          `json:"seniorityLevel"`
		CoreSkills              json.RawMessage `json:"coreSkills"`
		ExpectedAccomplishments json.RawMessage `json:"expectedAccomplishments"`
		TypicalMetrics          []string        `json:"typicalMetrics"`
	}
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark JSON: %w", err)
	}

	benchmark := &types.BenchmarkCandidate{
		RoleTitle:      doc.RoleTitle,
		SeniorityLevel: doc.SeniorityLevel,
		TypicalMetrics: doc.TypicalMetrics,
	}

	for _, obj := range parsing.FilterRecords(decodeAny(doc.CoreSkills), []string{"skill"}) {
		benchmark.CoreSkills = append(benchmark.CoreSkills, types.CoreSkill{
			Skill:             stringField(obj, "skill"),
			Criticality:       criticality(stringField(obj, "criticality")),
			WhyMatters:        stringField(obj, "whyMatters"),
			EvidenceOfMastery: stringField(obj, "evidenceOfMastery"),
		})
	}

	for _, obj := range parsing.FilterRecords(decodeAny(doc.ExpectedAccomplishments), []string{"type"}) {
		benchmark.ExpectedAccomplishments = append(benchmark.ExpectedAccomplishments, types.ExpectedAccomplishment{
			Type:             stringField(obj, "type"),
			Description:      stringField(obj, "description"),
			ExampleBullet:    stringField(obj, "exampleBullet"),
			MetricsToInclude: stringSlice(obj["metricsToInclude"]),
		})
	}

	return benchmark, nil
}

// keywordNames normalizes a raw keyword list (strings or objects) down to the
// keyword strings.
func keywordNames(raw json.RawMessage) []string {
	keywords := parsing.NormalizeKeywords(decodeAny(raw))
	if len(keywords) == 0 {
		return nil
	}
	names := make([]string, len(keywords))
	for i, kw := range keywords {
		names[i] = kw.Keyword
	}
	return names
}

func prioritizedKeywords(raw json.RawMessage) []types.PrioritizedKeyword {
	var out []types.PrioritizedKeyword
	for _, obj := range parsing.FilterRecords(decodeAny(raw), []string{"keyword", "criticality"}) {
		out = append(out, types.PrioritizedKeyword{
			Keyword:     stringField(obj, "keyword"),
			Criticality: criticality(stringField(obj, "criticality")),
		})
	}
	return out
}

// criticality maps richer model vocabularies onto the canonical enum.
func criticality(value string) string {
	switch value {
	case "must-have", "nice-to-have", "bonus":
		return value
	case "critical", "required":
		return "must-have"
	default:
		return "nice-to-have"
	}
}

func decodeAny(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
