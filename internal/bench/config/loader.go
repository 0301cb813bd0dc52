package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/fetchbench/pkg/jsonschema"
)

// Load reads and validates a scenario file. The format is chosen by
// extension: .yaml/.yml or .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := jsonschema.Validate(string(data), fileSchema); err != nil {
			return nil, fmt.Errorf("config does not match schema: %w", err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (use .yaml, .yml, or .json)", filepath.Ext(path))
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
