package types

import "strings"

// BenchmarkCandidate describes what a strong candidate for the target role
// looks like. Produced by the upstream analysis step and used to enrich gap
// actions with concrete guidance.
type BenchmarkCandidate struct {
	RoleTitle               string                   `json:"roleTitle"`
	SeniorityLevel          string                   `json:"seniorityLevel,omitempty"`
	CoreSkills              []CoreSkill              `json:"coreSkills,omitempty"`
	ExpectedAccomplishments []ExpectedAccomplishment `json:"expectedAccomplishments,omitempty"`
	TypicalMetrics          []string                 `json:"typicalMetrics,omitempty"`
}

// CoreSkill is a skill a benchmark candidate carries, with the rationale for
// why it matters and how mastery is typically demonstrated.
type CoreSkill struct {
	Skill             string `json:"skill"`
	Criticality       string `json:"criticality"` // must-have, nice-to-have, or bonus
	WhyMatters        string `json:"whyMatters,omitempty"`
	EvidenceOfMastery string `json:"evidenceOfMastery,omitempty"`
}

// ExpectedAccomplishment is an accomplishment type benchmark candidates show,
// with an example bullet a candidate could adapt.
type ExpectedAccomplishment struct {
	Type             string   `json:"type"`
	Description      string   `json:"description,omitempty"`
	ExampleBullet    string   `json:"exampleBullet,omitempty"`
	MetricsToInclude []string `json:"metricsToInclude,omitempty"`
}

// FindCoreSkill returns the core skill whose name matches the keyword
// (case-insensitive exact match), or nil if none matches.
func (b *BenchmarkCandidate) FindCoreSkill(keyword string) *CoreSkill {
	for i := range b.CoreSkills {
		if strings.EqualFold(b.CoreSkills[i].Skill, keyword) {
			return &b.CoreSkills[i]
		}
	}
	return nil
}

// FindExpectedAccomplishment returns the expected accomplishment with the
// exact type tag, or nil if none matches.
func (b *BenchmarkCandidate) FindExpectedAccomplishment(typeTag string) *ExpectedAccomplishment {
	for i := range b.ExpectedAccomplishments {
		if b.ExpectedAccomplishments[i].Type == typeTag {
			return &b.ExpectedAccomplishments[i]
		}
	}
	return nil
}
