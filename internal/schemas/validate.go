// Package schemas validates incoming API request bodies against embedded
// JSON Schemas before they reach the handlers.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// checklistRequestSchema is the contract for POST /v1/gap-checklist. The
// scoreBreakdown and benchmark payloads are produced by the analysis model,
// so their inner shapes are deliberately loose; the schema pins down only the
// envelope the handlers depend on.
const checklistRequestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["scoreBreakdown", "benchmark"],
	"properties": {
		"scoreBreakdown": {
			"type": "object",
			"required": ["categories"],
			"properties": {
				"categories": {
					"type": "object",
					"required": ["keywords", "experience", "accomplishments", "atsCompliance"],
					"properties": {
						"keywords":        {"type": "object"},
						"experience":      {"type": "object"},
						"accomplishments": {"type": "object"},
						"atsCompliance":   {"type": "object"}
					}
				}
			}
		},
		"benchmark": {
			"type": "object",
			"properties": {
				"roleTitle":      {"type": "string"},
				"seniorityLevel": {"type": "string"},
				"coreSkills":     {"type": "array"},
				"expectedAccomplishments": {"type": "array"},
				"typicalMetrics": {"type": "array", "items": {"type": "string"}}
			}
		},
		"resumeText": {"type": "string"}
	}
}`

var checklistSchema = gojsonschema.NewStringLoader(checklistRequestSchema)

// ValidateChecklistRequest validates a raw checklist request body. It returns
// a *ValidationError when the body is well formed JSON but violates the
// contract, and a plain error when the body is not JSON at all.
func ValidateChecklistRequest(body []byte) error {
	result, err := gojsonschema.Validate(checklistSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
