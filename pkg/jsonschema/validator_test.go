package jsonschema

import (
	"strings"
	"testing"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0},
		"email": {"type": "string", "format": "email"}
	},
	"additionalProperties": false
}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		errPart string
	}{
		{
			name: "conforming document",
			doc:  `{"name": "alice", "age": 30}`,
		},
		{
			name: "optional property present",
			doc:  `{"name": "bob", "age": 25, "email": "bob@example.com"}`,
		},
		{
			name:    "missing required property",
			doc:     `{"name": "carol"}`,
			wantErr: true,
			errPart: "age",
		},
		{
			name:    "wrong type",
			doc:     `{"name": "dave", "age": "old"}`,
			wantErr: true,
			errPart: "age",
		},
		{
			name:    "violates minimum",
			doc:     `{"name": "eve", "age": -1}`,
			wantErr: true,
		},
		{
			name:    "unknown property",
			doc:     `{"name": "frank", "age": 40, "nickname": "f"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc, personSchema)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errPart != "" && !strings.Contains(err.Error(), tt.errPart) {
					t.Errorf("Validate() error = %q, want mention of %q", err, tt.errPart)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(`{"name": "alice"`, personSchema)
	if err == nil {
		t.Fatal("Validate() expected error for malformed JSON, got nil")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("Validate() error = %q, want invalid JSON", err)
	}
}

func TestValidate_MalformedSchema(t *testing.T) {
	err := Validate(`{}`, `{"type": 42}`)
	if err == nil {
		t.Fatal("Validate() expected error for malformed schema, got nil")
	}
	if !strings.Contains(err.Error(), "invalid schema") {
		t.Errorf("Validate() error = %q, want invalid schema", err)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(`{"name": "alice", "age": 30}`, personSchema) {
		t.Error("IsValid() = false for conforming document")
	}
	if IsValid(`{"name": "alice"}`, personSchema) {
		t.Error("IsValid() = true for non-conforming document")
	}
	if IsValid(`not json`, personSchema) {
		t.Error("IsValid() = true for malformed document")
	}
}
