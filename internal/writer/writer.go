// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer serializes the final document and its statistics sidecar.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

// WriteDocument writes each page in order as an annotated section: a
// "=== Page <n> ===" delimiter line followed by the page's text and a
// trailing newline.
func WriteDocument(path string, doc types.Document) error {
	var b strings.Builder
	for _, p := range doc {
		fmt.Fprintf(&b, "\n=== Page %d ===\n\n", p.Index)
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing cleaned text %s: %w", path, err)
	}
	return nil
}

// StatsPath returns the sidecar path for a given output path.
func StatsPath(outputPath string) string {
	return outputPath + ".stats.json"
}

// WriteStats writes the pipeline statistics as indented JSON.
func WriteStats(path string, stats types.PipelineStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing stats %s: %w", path, err)
	}
	return nil
}
