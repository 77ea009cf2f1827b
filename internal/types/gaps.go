package types

// GapType identifies which generator produced a gap action.
type GapType string

// Gap types.
const (
	GapTypeKeyword        GapType = "keyword"
	GapTypeAccomplishment GapType = "accomplishment"
	GapTypeExperience     GapType = "experience"
	GapTypeFormat         GapType = "format"
)

// Severity is the three-level priority of a gap action. Richer vocabularies
// seen upstream (critical/important/nice-to-have) are mapped to these three
// levels at the boundary and never stored.
type Severity string

// Severity levels, highest priority first.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the sort rank of a severity: high=0, medium=1, low=2.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// ActionVerb is the remediation verb attached to a gap action.
type ActionVerb string

// Remediation verbs.
const (
	ActionAdd          ActionVerb = "add"
	ActionStrengthen   ActionVerb = "strengthen"
	ActionReorganize   ActionVerb = "reorganize"
	ActionRemove       ActionVerb = "remove"
	ActionAddNewBullet ActionVerb = "add-new-bullet"
)

// ResumeSection names a section of the resume a gap action targets.
type ResumeSection string

// Resume sections.
const (
	SectionSummary    ResumeSection = "summary"
	SectionExperience ResumeSection = "experience"
	SectionSkills     ResumeSection = "skills"
	SectionEducation  ResumeSection = "education"
)

// Alternative is a secondary suggestion attached to a gap action.
type Alternative struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// GapAction is a single actionable checklist item. Records are created fresh
// on every invocation; the ID carries no stability guarantee across calls.
type GapAction struct {
	ID                    string        `json:"id"`
	GapType               GapType       `json:"gapType"`
	Severity              Severity      `json:"severity"`
	Issue                 string        `json:"issue"`
	Impact                string        `json:"impact"`
	Action                ActionVerb    `json:"action"`
	ActionDescription     string        `json:"actionDescription"`
	SuggestedKeyword      string        `json:"suggestedKeyword,omitempty"`
	Section               ResumeSection `json:"section,omitempty"`
	AffectedBulletIndices []int         `json:"affectedBulletIndices,omitempty"`
	ImprovementType       string        `json:"improvementType,omitempty"`
	SuggestedBullet       string        `json:"suggestedBullet,omitempty"`
	Alternatives          []Alternative `json:"alternatives,omitempty"`
	UIOrder               int           `json:"uiOrder"`
}
