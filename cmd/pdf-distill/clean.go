package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-distill/internal/extractor"
	"github.com/pdiddy/pdf-distill/internal/filter"
	"github.com/pdiddy/pdf-distill/internal/normalize"
	"github.com/pdiddy/pdf-distill/internal/picker"
	"github.com/pdiddy/pdf-distill/internal/pipeline"
	"github.com/pdiddy/pdf-distill/internal/secrets"
	"github.com/pdiddy/pdf-distill/internal/transform"
	"github.com/pdiddy/pdf-distill/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file.pdf]",
	Short: "Convert a PDF into a cleaned plain-text file",
	Long: `Clean extracts per-page text from the given PDF, removes extraction
artifacts and navigation boilerplate, optionally polishes each page with an
LLM, and writes <stem>_cleaned.txt plus a <output>.stats.json sidecar.

Without an argument, clean lists the *.pdf files in the working directory
and prompts for a numeric selection (q to quit). The LLM cleanup stage runs
only when a credential is configured (config, OPENAI_API_KEY, or
.secrets/openai-api-key); otherwise it is skipped silently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().String("output", "", "output text file (default: <stem>_cleaned.txt)")
	cleanCmd.Flags().String("model", "", "model identifier for LLM cleanup")
	cleanCmd.Flags().String("rules", "", "YAML rules file for the content filter")
	cleanCmd.Flags().Bool("no-llm", false, "skip the LLM cleanup stage even when a credential is configured")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pdfPath, err := resolveInput(args)
	if err != nil {
		if errors.Is(err, picker.ErrQuit) {
			return nil
		}
		return err
	}

	outputPath := cfg.Output.Path
	if outputPath == "" {
		stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
		outputPath = stem + "_cleaned.txt"
	}

	rules, err := filter.LoadRules(cfg.Cleanup.RulesFile)
	if err != nil {
		return err
	}

	var stage *transform.Stage
	if cfg.Transform.Enabled {
		backend := transform.NewOpenAIBackend(cfg.Transform.APIKey, cfg.Transform.Model)
		stage = transform.NewStage(backend, cfg.Transform.ChunkSize)
	}

	driver := pipeline.New(extractor.NewPDFExtractor(), normalize.New(), filter.NewWithRules(rules), stage)
	return driver.Run(cmd.Context(), pdfPath, outputPath, os.Stdout)
}

// loadConfig builds the pipeline configuration from the viper config file
// and environment, then overlays command-line flags. The transform stage is
// enabled only when a credential resolves and --no-llm was not given.
func loadConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output.Path = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Transform.Model = v
	}
	if v, _ := cmd.Flags().GetString("rules"); v != "" {
		cfg.Cleanup.RulesFile = v
	}

	noLLM, _ := cmd.Flags().GetBool("no-llm")
	cfg.Transform.APIKey = secrets.ResolveAPIKey(cfg.Transform.APIKey, secretsDir)
	cfg.Transform.Enabled = !noLLM && cfg.Transform.APIKey != ""
	return cfg, nil
}

// resolveInput returns the PDF to process: the positional argument when
// present, otherwise the interactive picker over the working directory.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	candidates, err := picker.ListPDFs(".")
	if err != nil {
		return "", err
	}
	return picker.Choose(candidates, os.Stdin, os.Stdout)
}
