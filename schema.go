package admetlab2

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ReadSchemaFile loads a JSON schema document from path.
func ReadSchemaFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read response schema file: %w", err)
	}

	return string(data), nil
}

func compileSchema(schema string) (*gojsonschema.Schema, error) {
	if strings.TrimSpace(schema) == "" {
		return nil, fmt.Errorf("%w: response schema is empty", ErrInvalidConfig)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("%w: compile response schema: %v", ErrInvalidConfig, err)
	}

	return compiled, nil
}

// validateResponse checks data against schema. NaN and Infinity values are
// seen by the schema as null.
func validateResponse(schema *gojsonschema.Schema, data []byte) error {
	masked, _ := maskNonFinite(data)

	result, err := schema.Validate(gojsonschema.NewBytesLoader(masked))
	if err != nil {
		return fmt.Errorf("validate response schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrResponseSchemaInvalid, strings.Join(errs, "; "))
}
