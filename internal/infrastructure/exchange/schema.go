package exchange

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/orbit/internal/domain/entity"
)

// Schema returns the JSON schema of the export document.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Only fields tagged required are required.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&entity.ExportDocument{})
	schema.ID = "https://github.com/bnema/orbit/export.schema.json"
	schema.Title = "Orbit Export"
	schema.Description = "Bookmarks and settings exported by orbit"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
