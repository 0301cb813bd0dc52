package config

// fileSchema is the JSON Schema that JSON scenario files are validated
// against before unmarshalling. YAML files go through struct-level
// validation only.
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["scenarios"],
  "properties": {
    "name": { "type": "string" },
    "description": { "type": "string" },
    "scenarios": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "required": ["count", "strategy"],
        "properties": {
          "count": { "type": "integer", "minimum": 1 },
          "retrieveDelay": { "type": "string", "pattern": "^[0-9]" },
          "rateLimitDelay": { "type": "string", "pattern": "^[0-9]" },
          "strategy": { "enum": ["sequential", "cooperative", "parallel"] },
          "workers": { "type": "integer", "minimum": 0 }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
