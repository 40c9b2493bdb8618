// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CleanupConfig holds settings for the deterministic cleanup stages.
type CleanupConfig struct {
	// RulesFile is an optional YAML file that overrides the content filter's
	// boilerplate token list and minimum paragraph length.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty" mapstructure:"rules_file"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// TransformConfig holds settings for the optional LLM cleanup stage.
type TransformConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// Enabled controls whether the LLM cleanup stage runs at all. The CLI
	// sets it only after a credential has been resolved, so the skipped
	// path is an explicit branch rather than hidden environment state.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// ChunkSize is the maximum chunk length in characters submitted per
	// request (default 4000).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size" mapstructure:"chunk_size"`
}

// OutputConfig holds settings for the output stage.
type OutputConfig struct {
	// Path is the annotated text output file. The statistics sidecar is
	// written next to it as Path + ".stats.json".
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Cleanup   CleanupConfig   `json:"cleanup" yaml:"cleanup" mapstructure:"cleanup"`
	Transform TransformConfig `json:"transform" yaml:"transform" mapstructure:"transform"`
	Output    OutputConfig    `json:"output" yaml:"output" mapstructure:"output"`
}
