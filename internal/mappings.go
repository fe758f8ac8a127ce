package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Mappings renames tags before they are written into front matter.
type Mappings map[string]string

// LoadMappings loads tag mappings from a YAML or JSON file. YAML is tried
// first with a JSON fallback.
func LoadMappings(filename string) (Mappings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings file: %w", err)
	}

	var mappings Mappings
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		if jsonErr := json.Unmarshal(data, &mappings); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse mappings file as YAML or JSON: YAML error: %v, JSON error: %v", err, jsonErr)
		}
	}

	if mappings == nil {
		mappings = make(Mappings)
	}

	return mappings, nil
}

// Apply rewrites each tag through the mapping, preserving order. Tags
// without a mapping pass through unchanged.
func (m Mappings) Apply(tags []string) []string {
	if len(m) == 0 || len(tags) == 0 {
		return tags
	}

	mapped := make([]string, len(tags))
	for i, tag := range tags {
		if replacement, exists := m[tag]; exists {
			mapped[i] = replacement
		} else {
			mapped[i] = tag
		}
	}
	return mapped
}
