package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/infrastructure/config"
	"github.com/bnema/orbit/internal/infrastructure/exchange"
)

var schemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the export document",
	Long: `Print the JSON schema of the bookmark export document written by
:export. With --config, print the schema of config.toml instead.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the config file schema")
}

func runSchema(_ *cobra.Command, _ []string) error {
	generate := exchange.Schema
	if schemaConfig {
		generate = config.Schema
	}

	data, err := generate()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
