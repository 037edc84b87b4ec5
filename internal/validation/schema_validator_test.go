package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaContent), 0644))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "John", "age": 30}`, ""},
		{"valid data without optional field", `{"name": "Jane"}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type for field", `{"name": "John", "age": "thirty"}`, "age"},
		{"constraint violation", `{"name": "John", "age": -5}`, "age"},
		{"invalid JSON", `{"name": "John", "age": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0644))

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateFile("/nonexistent/data.json", ContentSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")

	err = v.ValidateBytes([]byte(`{}`), "/nonexistent/schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ContentSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		doc     map[string]interface{}
		wantErr bool
	}{
		{
			name: "empty document",
			doc:  map[string]interface{}{},
		},
		{
			name: "string and number literals",
			doc: map[string]interface{}{
				"effarig": map[string]interface{}{
					"unlocks": map[string]interface{}{
						"run": map[string]interface{}{"cost": "1e7"},
					},
				},
				"dilation": map[string]interface{}{
					"rebuyables": map[string]interface{}{
						"dtGain": map[string]interface{}{
							"initial_cost": 1e4,
							"increment":    "10",
							"purchase_cap": 5,
						},
					},
				},
			},
		},
		{
			name: "unknown section",
			doc: map[string]interface{}{
				"teresa": map[string]interface{}{},
			},
			wantErr: true,
		},
		{
			name: "unknown field on unlock",
			doc: map[string]interface{}{
				"effarig": map[string]interface{}{
					"unlocks": map[string]interface{}{
						"run": map[string]interface{}{"price": "1e7"},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "malformed literal",
			doc: map[string]interface{}{
				"dilation": map[string]interface{}{
					"upgrades": map[string]interface{}{
						"ttGenerator": map[string]interface{}{"cost": "lots"},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "negative purchase cap",
			doc: map[string]interface{}{
				"dilation": map[string]interface{}{
					"rebuyables": map[string]interface{}{
						"dtGain": map[string]interface{}{"purchase_cap": -1},
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDocument(tt.doc, ContentSchema)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "schema validation failed")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), ContentSchema))
	require.NoError(t, v.ValidateBytes([]byte(`{}`), ContentSchema))
	assert.Len(t, v.schemas, 1)
}
