// Package yaml adapts target lists and structured documents to YAML files.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/burpctl/burpctl/internal/domain/entities"
)

// LoadTargetList reads a targets file: a YAML document with a "paths"
// sequence of target URL strings. Order is preserved.
func LoadTargetList(path string) (*entities.TargetList, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied targets file
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var list entities.TargetList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse targets file %s: %w", path, err)
	}
	if len(list.Paths) == 0 {
		return nil, fmt.Errorf("targets file %s has no paths entries", path)
	}
	return &list, nil
}
