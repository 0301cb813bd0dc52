// Package jsonschema validates JSON documents against JSON Schemas.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks a JSON document against a JSON Schema.
//
// Returns nil if the document conforms, a validation error describing the
// first violation if it does not, or a wrapped error if the schema or the
// document cannot be parsed at all.
func Validate(doc, schema string) error {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(data); err != nil {
		return err
	}
	return nil
}

// IsValid reports whether a JSON document conforms to a JSON Schema,
// treating parse failures of either input as non-conformance.
func IsValid(doc, schema string) bool {
	return Validate(doc, schema) == nil
}
