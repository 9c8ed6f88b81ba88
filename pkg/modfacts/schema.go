package modfacts

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed project-schema.json
var projectSchemaJSON []byte

// SchemaJSON returns the canonical JSON schema for serialized Projects.
func SchemaJSON() []byte {
	return projectSchemaJSON
}

// ValidateDocument validates a serialized Project document against the
// canonical schema and returns the list of violation descriptions.
func ValidateDocument(document []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(projectSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return violations, nil
}
