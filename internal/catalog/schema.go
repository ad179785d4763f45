package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// entrySchema validates catalog entry files before they are accepted. Trait
// values must stay inside [0, 1] or the scoring rules lose their meaning.
const entrySchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"required_skills": {"type": "array", "items": {"type": "string"}},
		"visual_orientation": {"type": "number", "minimum": 0, "maximum": 1},
		"logical_orientation": {"type": "number", "minimum": 0, "maximum": 1},
		"creativity": {"type": "number", "minimum": 0, "maximum": 1},
		"detail_orientation": {"type": "number", "minimum": 0, "maximum": 1},
		"collaboration": {"type": "number", "minimum": 0, "maximum": 1},
		"independent_work": {"type": "number", "minimum": 0, "maximum": 1},
		"learning_curve": {"type": "number", "minimum": 0, "maximum": 1},
		"remote_friendly": {"type": "number", "minimum": 0, "maximum": 1},
		"tech_requirements": {"type": "string", "enum": ["low", "moderate", "high"]},
		"project_types": {"type": "array", "items": {"type": "string"}},
		"technologies": {"type": "array", "items": {"type": "string"}}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(entrySchema)

// validateEntry checks a YAML catalog entry document against the entry schema.
func validateEntry(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing entry: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating entry: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("entry does not match schema: %v", result.Errors())
	}
	return nil
}
