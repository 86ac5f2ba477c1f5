// Package competitor serves the bundled competitor intelligence table and
// turns one (category, region) cell of it into an actionable report.
package competitor

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/use-agent/brandscout/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/competitors.yaml
var bundled []byte

// ErrNotFound is returned for a category or region the table does not cover.
var ErrNotFound = errors.New("competitor data not found")

// Table is the immutable competitor data set, keyed by brand category and
// then by lowercased region code.
type Table struct {
	data map[string]map[string]models.RegionalCompetitorData
}

// Load parses the bundled table.
func Load() (*Table, error) {
	return Parse(bundled)
}

// Parse builds a Table from YAML in the bundled layout.
func Parse(raw []byte) (*Table, error) {
	var data map[string]map[string]models.RegionalCompetitorData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse competitor table: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("parse competitor table: no categories")
	}
	return &Table{data: data}, nil
}

// Categories lists the known categories in sorted order.
func (t *Table) Categories() []string {
	return sortedKeys(t.data)
}

// Lookup returns the raw cell for category and region.
func (t *Table) Lookup(category, region string) (models.RegionalCompetitorData, error) {
	regions, ok := t.data[category]
	if !ok {
		return models.RegionalCompetitorData{}, fmt.Errorf(
			"%w: no competitor data available for category: %s. Available categories: %s",
			ErrNotFound, category, strings.Join(t.Categories(), ", "))
	}
	cell, ok := regions[region]
	if !ok {
		return models.RegionalCompetitorData{}, fmt.Errorf(
			"%w: no competitor data available for region: %s in category: %s. Available regions: %s",
			ErrNotFound, region, category, strings.Join(sortedKeys(regions), ", "))
	}
	return cell, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
