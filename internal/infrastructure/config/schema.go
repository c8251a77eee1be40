package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the settings file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/qualzed/qb/settings.schema.json"
	schema.Title = "qb Settings"
	schema.Description = "Application settings for qb, a small tabbed web browser"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// SchemaFileName is the conventional name of the schema next to the settings file.
func SchemaFileName() string {
	return schemaFileName
}
