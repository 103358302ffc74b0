package skills

import "github.com/invopop/jsonschema"

// OutputJSONSchema renders the skill's declared output contract as a
// JSON Schema, suitable for handing to an LLM client that supports
// structured output or for documenting the contract to API consumers.
func (s *SkillDefinition) OutputJSONSchema() *jsonschema.Schema {
	if s.Output.Kind == SchemaText {
		minLen := uint64(1)
		return &jsonschema.Schema{
			Type:      "string",
			MinLength: &minLen,
		}
	}

	props := jsonschema.NewProperties()
	for _, field := range s.Output.RequiredFields {
		props.Set(field, jsonschema.TrueSchema)
	}
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             append([]string(nil), s.Output.RequiredFields...),
		AdditionalProperties: jsonschema.TrueSchema,
	}
}
