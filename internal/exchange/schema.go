package exchange

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the JSON and YAML import document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contacts"],
  "properties": {
    "contacts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["last_name"],
        "properties": {
          "position":       {"type": "integer", "minimum": 0},
          "last_name":      {"type": "string", "pattern": "^[^;\\r\\n]*$"},
          "first_name":     {"type": "string", "pattern": "^[^;\\r\\n]*$"},
          "patronymic":     {"type": "string", "pattern": "^[^;\\r\\n]*$"},
          "organization":   {"type": "string", "pattern": "^[^;\\r\\n]*$"},
          "work_phone":     {"type": "string", "pattern": "^[^;\\r\\n]*$"},
          "personal_phone": {"type": "string", "pattern": "^[^;\\r\\n]*$"}
        }
      }
    }
  }
}`

var (
	compiled     *gojsonschema.Schema
	compiledErr  error
	compiledOnce sync.Once
)

func documentValidator() (*gojsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiled, compiledErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return compiled, compiledErr
}

// validateDocument checks a decoded document (map/slice values as produced
// by encoding/json or yaml.v3) against documentSchema.
func validateDocument(doc any) error {
	schema, err := documentValidator()
	if err != nil {
		return fmt.Errorf("invalid schema definition: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed:\n- %s", dumpErrors(errs))
}

func dumpErrors(errs []string) string {
	// return first 3 errors to avoid massive output
	truncated := ""
	if len(errs) > 3 {
		truncated = fmt.Sprintf("\n... and %d more", len(errs)-3)
		errs = errs[:3]
	}
	return strings.Join(errs, "\n- ") + truncated
}
