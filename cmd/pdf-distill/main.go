// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-distill CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where per-key credential files live.
const secretsDir = ".secrets/"

// rootCmd is the base command for the pdf-distill CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-distill",
	Short: "Convert PDF documents into cleaned plain-text files",
	Long: `pdf-distill extracts per-page text from a PDF, runs it through a sequence
of deterministic cleanup passes (whitespace collapsing, artifact removal,
duplicate-line elimination, boilerplate filtering), optionally polishes each
page with an LLM, and writes an annotated text file plus a JSON statistics
sidecar.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env file; absence is the normal case.
		_ = godotenv.Load()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-distill.yaml or ~/.config/pdf-distill/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-distill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-distill"))
		}
	}

	viper.SetEnvPrefix("PDF_DISTILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
