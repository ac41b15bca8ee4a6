package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-lint/internal/observability"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the effective schema rules",
	Long:  "Prints the schema rules a lint run would apply, after merging --config over the defaults.",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

var schemaFormat string

func init() {
	schemaCmd.Flags().StringVar(&schemaFormat, "format", "text", "Output format: text|json")
	schemaCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to a YAML file overriding the default schema rules")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, _ []string) error {
	if schemaFormat != "text" && schemaFormat != "json" {
		return fmt.Errorf("invalid --format %q (must be text or json)", schemaFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if schemaFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	observability.NewPrinter(os.Stdout).PrintEffectiveRules(cfg)
	return nil
}
