package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSchema(t *testing.T) string {
	t.Helper()
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"minProperties": 1,
		"additionalProperties": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		}
	}`
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0o644))
	return path
}

func TestValidateDocument_Valid(t *testing.T) {
	schemaPath := writeTempSchema(t)

	err := ValidateDocument(schemaPath, []byte(`{"Python Developer": ["python", "flask"]}`))
	assert.NoError(t, err)
}

func TestValidateDocument_InvalidDocument(t *testing.T) {
	schemaPath := writeTempSchema(t)

	err := ValidateDocument(schemaPath, []byte(`{"Python Developer": "not-an-array"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateDocument_MissingSchema(t *testing.T) {
	err := ValidateDocument(filepath.Join(t.TempDir(), "missing.schema.json"), []byte(`{}`))

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	// internal/schemas sits two levels below the repo root, so the
	// two-levels-up candidate should find the real taxonomy schema.
	path := ResolveSchemaPath(filepath.Join("schemas", "taxonomy.schema.json"))
	assert.NotEmpty(t, path)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "does-not-exist.schema.json")))
}
