package config

import (
	"github.com/grovetools/seshconnect/schema"
)

// SchemaValidator validates preferences against the generated JSON Schema.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator generates the preferences schema and compiles it.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator("preferences.json", data)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// Validate validates preferences against the schema.
func (v *SchemaValidator) Validate(prefs interface{}) error {
	return v.validator.Validate(prefs)
}
