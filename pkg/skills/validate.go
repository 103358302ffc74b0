package skills

import (
	"fmt"
	"strings"
)

// ValidateOutput checks a produced skill result against the skill's
// declared output contract. The check is intentionally shallow: it
// catches malformed or truncated model output (missing fields, a string
// where an object was promised), not arbitrary JSON typing.
//
// Like the matcher, this is total: unknown ids and malformed output are
// reported through the result, never raised.
func (r *Registry) ValidateOutput(skillID string, output any) ValidationResult {
	def, ok := r.Get(skillID)
	if !ok {
		return invalid(fmt.Sprintf("Unknown skill: %s", skillID))
	}

	switch def.Output.Kind {
	case SchemaJSON:
		return validateJSONOutput(def, output)
	case SchemaText:
		return validateTextOutput(output)
	default:
		// Unreachable for a validated registry.
		return invalid(fmt.Sprintf("Unknown output schema kind for skill %s", skillID))
	}
}

func validateJSONOutput(def *SkillDefinition, output any) ValidationResult {
	obj, ok := output.(map[string]any)
	if !ok {
		return invalid(fmt.Sprintf("Expected object output for skill %s", def.ID))
	}

	var errs []string
	for _, field := range def.Output.RequiredFields {
		if v, present := obj[field]; !present || v == nil {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}
	if len(errs) > 0 {
		return ValidationResult{Valid: false, Errors: errs}
	}
	return ValidationResult{Valid: true}
}

func validateTextOutput(output any) ValidationResult {
	text, ok := output.(string)
	if !ok {
		return invalid("Expected text output")
	}
	if strings.TrimSpace(text) == "" {
		return invalid("Expected non-empty text output")
	}
	return ValidationResult{Valid: true}
}

func invalid(msgs ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: msgs}
}
