// Package types provides type definitions for structured data used throughout the resume-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchScoreBreakdown is the per-category score breakdown produced by the
// upstream analysis step. The breakdown is read-only once produced; the gap
// generators never mutate it.
type MatchScoreBreakdown struct {
	Categories *ScoreCategories `json:"categories"`
}

// ScoreCategories holds the four scored categories of a resume/job match.
type ScoreCategories struct {
	Keywords        KeywordCategory        `json:"keywords"`
	Experience      ExperienceCategory     `json:"experience"`
	Accomplishments AccomplishmentCategory `json:"accomplishments"`
	ATSCompliance   ATSCategory            `json:"atsCompliance"`
}

// KeywordCategory scores keyword coverage against the job description.
type KeywordCategory struct {
	Score             int                  `json:"score"`
	Matched           []string             `json:"matched,omitempty"`
	Missing           []string             `json:"missing,omitempty"`
	MissingByPriority []PrioritizedKeyword `json:"missingByPriority,omitempty"`
	Summary           string               `json:"summary,omitempty"`
}

// PrioritizedKeyword is a missing keyword tagged with how critical it is for the role.
type PrioritizedKeyword struct {
	Keyword     string `json:"keyword"`
	Criticality string `json:"criticality"` // must-have, nice-to-have, or bonus
}

// ExperienceCategory scores the candidate's years of experience against the
// benchmark range for the role.
type ExperienceCategory struct {
	Score          int            `json:"score"`
	UserYears      int            `json:"userYears"`
	BenchmarkRange BenchmarkRange `json:"benchmarkRange"`
	LevelMatch     string         `json:"levelMatch"` // below, aligned, or above
	Gaps           []string       `json:"gaps,omitempty"`
}

// BenchmarkRange is the expected years-of-experience range for a role.
type BenchmarkRange struct {
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Median    int    `json:"median"`
	Reasoning string `json:"reasoning,omitempty"`
}

// AccomplishmentCategory scores how well the resume quantifies impact.
type AccomplishmentCategory struct {
	Score               int                   `json:"score"`
	HasMetrics          bool                  `json:"hasMetrics"`
	UserMetrics         []string              `json:"userMetrics,omitempty"`
	BenchmarkMetrics    []string              `json:"benchmarkMetrics,omitempty"`
	MissingMetrics      []string              `json:"missingMetrics,omitempty"`
	AccomplishmentTypes []AccomplishmentCheck `json:"accomplishmentTypes,omitempty"`
}

// AccomplishmentCheck records whether a given accomplishment type was found on
// the resume, with an optional supporting quote.
type AccomplishmentCheck struct {
	Type     string `json:"type"`
	Found    bool   `json:"found"`
	Evidence string `json:"evidence,omitempty"`
}

// ATSCategory scores resume formatting against applicant-tracking-system rules.
type ATSCategory struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	SectionsFound   []string `json:"sectionsFound,omitempty"`
	SectionsMissing []string `json:"sectionsMissing,omitempty"`
}
