package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ContentSchema is the embedded schema for content override files.
const ContentSchema = "content.schema.json"

//go:embed schemas/*.json
var embedded embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
	ValidateDocument(doc interface{}, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator. Schema paths name either an
// embedded schema such as ContentSchema or a file on disk.
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.ValidateDocument(doc, schemaPath)
}

// ValidateDocument validates an already-decoded document. Documents decoded from
// YAML are normalized through JSON first so map and number types match.
func (v *validator) ValidateDocument(doc interface{}, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	schemaData, err := embedded.ReadFile("schemas/" + schemaPath)
	if err != nil {
		schemaData, err = os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file: %w", err)
		}
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schemaData, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errs []string
		collectErrors(validationErr, &errs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errs *[]string) {
	if msg := formatError(err); msg != "" {
		*errs = append(*errs, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
