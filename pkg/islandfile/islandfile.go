// Package islandfile reads and writes island records as JSON files. It is
// the exchange format between the generator and external consumers such as
// renderers or exporters.
package islandfile

import (
	"encoding/json"
	"fmt"
	"os"

	"islandgen/internal/island"
)

// Save writes the island record to path as indented JSON.
func Save(path string, isle *island.Island) error {
	data, err := json.MarshalIndent(isle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode island: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads an island record previously written by Save. Border membership
// indexes and interior point order are restored as part of decoding.
func Load(path string) (*island.Island, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var isle island.Island
	if err := json.Unmarshal(data, &isle); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &isle, nil
}
