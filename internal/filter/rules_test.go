// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   Rules
		errMsg string
	}{
		{
			name:  "empty path returns zero rules",
			setup: func(t *testing.T) string { return "" },
			want:  Rules{},
		},
		{
			name: "parses thresholds and tokens",
			setup: func(t *testing.T) string {
				return writeRules(t, "min_paragraph_len: 12\nextra_boilerplate:\n  - \"table of contents\"\n  - \"all rights reserved\"\n")
			},
			want: Rules{
				MinParagraphLen:  12,
				ExtraBoilerplate: []string{"table of contents", "all rights reserved"},
			},
		},
		{
			name: "partial file leaves other fields zero",
			setup: func(t *testing.T) string {
				return writeRules(t, "extra_boilerplate: [home]\n")
			},
			want: Rules{ExtraBoilerplate: []string{"home"}},
		},
		{
			name: "missing file errors",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			errMsg: "reading rules file",
		},
		{
			name: "malformed yaml errors",
			setup: func(t *testing.T) string {
				return writeRules(t, "extra_boilerplate: {not: [valid\n")
			},
			errMsg: "parsing rules file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			got, err := LoadRules(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
