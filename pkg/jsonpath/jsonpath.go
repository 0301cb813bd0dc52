// Package jsonpath extracts values from JSON documents by dotted path.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at a dotted path within a JSON document, as a
// string. Paths use gjson syntax ("stats.latency.p95", "results.0.elapsed");
// a leading "$." JSONPath prefix is accepted and stripped.
func Extract(json string, path string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.Get(json, normalize(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractMultiple resolves several named paths against one document. All
// paths are attempted; the first failure is reported alongside how many
// paths failed in total.
func ExtractMultiple(json string, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no path expressions provided")
	}

	results := make(map[string]string, len(paths))
	var firstErr error
	failed := 0
	for name, path := range paths {
		value, err := Extract(json, path)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results[name] = value
	}

	if firstErr != nil {
		return results, fmt.Errorf("%d of %d paths failed: %w", failed, len(paths), firstErr)
	}
	return results, nil
}

// normalize converts a JSONPath-style expression to gjson syntax.
func normalize(path string) string {
	path = strings.TrimPrefix(path, "$.")
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")
	return path
}
