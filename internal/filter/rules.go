// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Rules adjusts the filter's discard thresholds. Operators ship a small YAML
// file per document set to extend the boilerplate token list, e.g.:
//
//	min_paragraph_len: 12
//	extra_boilerplate:
//	  - "table of contents"
//	  - "all rights reserved"
type Rules struct {
	MinParagraphLen  int      `yaml:"min_paragraph_len"`
	ExtraBoilerplate []string `yaml:"extra_boilerplate"`
}

// LoadRules reads a YAML rules file. An empty path returns zero Rules, which
// leave the defaults in place.
func LoadRules(path string) (Rules, error) {
	var r Rules
	if path == "" {
		return r, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return r, nil
}
