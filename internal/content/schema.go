package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/portfolio.schema.json
var portfolioSchema string

// FieldError is a single schema violation
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every schema violation of a content document
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("content does not match schema:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateDocument checks a raw content document against the embedded JSON
// Schema. It catches unknown keys and wrong types that decoding into the
// models would silently drop.
func ValidateDocument(data []byte, format Format) error {
	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported content format: %q", format)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(portfolioSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{}
	for _, re := range result.Errors() {
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return schemaErr
}
