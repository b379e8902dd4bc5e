package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

//go:generate go run ../tools/schema-generator -o ../schema/definitions/seshconnect.schema.json

// GenerateSchema generates the JSON Schema for the preferences document.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown top-level sections are extensions (e.g. logging).
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Preferences{})
	schema.Title = "seshconnect Preferences"
	schema.Description = "Schema for ~/.config/seshconnect/config.yml."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
