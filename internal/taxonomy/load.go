package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// schemaRelPath is the taxonomy schema location relative to the repo root.
var schemaRelPath = filepath.Join("schemas", "taxonomy.schema.json")

// LoadFile reads a role -> skills mapping from a JSON file and builds a
// Taxonomy from it. The document is validated against the taxonomy JSON
// Schema when the schema file can be located; otherwise only structural
// validation in New applies.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemaRelPath); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
		}
	}

	var roles map[string][]string
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON %s: %w", path, err)
	}

	return New(roles)
}
