package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"resume.schema.json",
		"profiles.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft07(t *testing.T) {
	for _, schemaFile := range []string{"resume.schema.json", "profiles.schema.json"} {
		data, err := os.ReadFile(filepath.Join(".", schemaFile))
		require.NoError(t, err)

		var schema map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &schema))
		assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"], schemaFile)
		assert.NotEmpty(t, schema["$id"], schemaFile)
	}
}
