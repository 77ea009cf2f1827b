package gaps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jordan/resume-coach/internal/types"
)

const (
	maxFormatIssueGaps    = 3
	maxMissingSectionGaps = 2
	maxFormatWarningGaps  = 2
)

// FormatGaps emits gap actions for ATS compliance problems: up to 3 issues,
// up to 2 missing sections, and up to 2 warnings.
func FormatGaps(categories *types.ScoreCategories, _ *types.BenchmarkCandidate) []types.GapAction {
	ats := categories.ATSCompliance
	var actions []types.GapAction

	for i, issue := range ats.Issues {
		if i >= maxFormatIssueGaps {
			break
		}
		action := classifyFormatAction(issue)
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeFormat,
			Severity:          types.SeverityMedium,
			Issue:             issue,
			Impact:            "Could improve ATS parsing of your resume",
			Action:            action,
			ActionDescription: formatActionDescription(action),
			UIOrder:           len(actions),
		})
	}

	for i, section := range ats.SectionsMissing {
		if i >= maxMissingSectionGaps {
			break
		}
		severity := types.SeverityLow
		if strings.Contains(strings.ToLower(section), "summary") {
			severity = types.SeverityMedium
		}
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeFormat,
			Severity:          severity,
			Issue:             fmt.Sprintf("Your resume has no %s section", section),
			Impact:            "Could improve ATS parsing of your resume",
			Action:            types.ActionAdd,
			ActionDescription: fmt.Sprintf("Add a clearly-labeled %s section; ATS parsers look for standard headings.", section),
			UIOrder:           len(actions),
		})
	}

	for i, warning := range ats.Warnings {
		if i >= maxFormatWarningGaps {
			break
		}
		actions = append(actions, types.GapAction{
			ID:                uuid.New().String(),
			GapType:           types.GapTypeFormat,
			Severity:          types.SeverityLow,
			Issue:             warning,
			Impact:            "Could improve ATS parsing of your resume",
			Action:            types.ActionReorganize,
			ActionDescription: "Adjust the formatting so automated parsers read the content cleanly.",
			UIOrder:           len(actions),
		})
	}

	return actions
}

// classifyFormatAction picks the remediation verb for an ATS issue from
// substring cues, defaulting to reorganize.
func classifyFormatAction(issue string) types.ActionVerb {
	lower := strings.ToLower(issue)
	switch {
	case strings.Contains(lower, "remove") || strings.Contains(lower, "delete") || strings.Contains(lower, "graphic"):
		return types.ActionRemove
	case strings.Contains(lower, "reorder") || strings.Contains(lower, "move") || strings.Contains(lower, "structure"):
		return types.ActionReorganize
	case strings.Contains(lower, "add") || strings.Contains(lower, "include") || strings.Contains(lower, "missing"):
		return types.ActionAdd
	default:
		return types.ActionReorganize
	}
}

func formatActionDescription(action types.ActionVerb) string {
	switch action {
	case types.ActionRemove:
		return "Remove the offending element; graphics, tables, and text boxes confuse ATS parsers."
	case types.ActionAdd:
		return "Add the missing element so ATS parsers can find what they expect."
	default:
		return "Restructure this part of the resume into a simple, linear layout."
	}
}
