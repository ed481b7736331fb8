// Package chart provides display labels for ledger account names,
// with optional overrides loaded from a YAML file.
package chart

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Chart maps category names to account display labels.
type Chart struct {
	labels map[string]string
}

// accountOverride is one category → label mapping in the YAML file.
type accountOverride struct {
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
}

// chartConfig is the YAML override file layout:
//
//	accounts:
//	  - category: travel_expense
//	    label: Travel & Conveyance
type chartConfig struct {
	Accounts []accountOverride `yaml:"accounts"`
}

// Default returns a chart with no overrides; every label falls back to
// the derived form (category name uppercased, underscores to spaces).
func Default() *Chart {
	return &Chart{labels: make(map[string]string)}
}

// Load reads a chart override file.
func Load(configPath string) (*Chart, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}

	var config chartConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	chart := Default()
	for _, override := range config.Accounts {
		if override.Category == "" || override.Label == "" {
			return nil, fmt.Errorf("chart override needs both category and label, got category=%q label=%q", override.Category, override.Label)
		}
		chart.labels[override.Category] = override.Label
	}

	return chart, nil
}

// Label returns the display label for a category: the configured
// override when present, otherwise the category name uppercased with
// underscores replaced by spaces ("travel_expense" → "TRAVEL EXPENSE").
func (c *Chart) Label(category string) string {
	if c != nil && c.labels != nil {
		if label, ok := c.labels[category]; ok {
			return label
		}
	}
	return strings.ToUpper(strings.ReplaceAll(category, "_", " "))
}

// HasOverride reports whether a custom label is configured for the category.
func (c *Chart) HasOverride(category string) bool {
	if c == nil || c.labels == nil {
		return false
	}
	_, ok := c.labels[category]
	return ok
}
