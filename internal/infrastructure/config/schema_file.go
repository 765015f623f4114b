package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/orbit/config.schema.json"

// Schema returns the JSON schema describing config.toml.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "Orbit Configuration"
	schema.Description = "Configuration schema for Orbit, a terminal start page with an omnibox"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json into dir.
// This is called automatically when a default config is created.
func GenerateSchemaFile(dir string) error {
	data, err := Schema()
	if err != nil {
		return err
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
