// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKeyFile, "  sk-abc123  \n")
				return dir
			},
			want: map[string]string{
				OpenAIKeyFile: "sk-abc123",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKeyFile, "sk-valid")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".hidden-key", "secret")
				return dir
			},
			want: map[string]string{
				OpenAIKeyFile: "sk-valid",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKeyFile, "sk-123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				OpenAIKeyFile: "sk-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv(OpenAIKeyEnv, "sk-from-env")
		assert.Equal(t, "sk-explicit", ResolveAPIKey("sk-explicit", t.TempDir()))
	})

	t.Run("environment variable before key file", func(t *testing.T) {
		t.Setenv(OpenAIKeyEnv, "sk-from-env")
		dir := t.TempDir()
		writeFile(t, dir, OpenAIKeyFile, "sk-from-file")
		assert.Equal(t, "sk-from-env", ResolveAPIKey("", dir))
	})

	t.Run("key file as last resort", func(t *testing.T) {
		t.Setenv(OpenAIKeyEnv, "")
		dir := t.TempDir()
		writeFile(t, dir, OpenAIKeyFile, "sk-from-file\n")
		assert.Equal(t, "sk-from-file", ResolveAPIKey("", dir))
	})

	t.Run("empty when nothing is configured", func(t *testing.T) {
		t.Setenv(OpenAIKeyEnv, "")
		assert.Empty(t, ResolveAPIKey("", filepath.Join(t.TempDir(), "absent")))
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
