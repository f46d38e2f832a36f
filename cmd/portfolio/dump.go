package main

import (
	"github.com/spf13/cobra"

	"devd.dev/internal/content"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective content",
	Long: `Print the content the site would render, after defaults and overrides.
Without --content this is the built-in content, a starting point for a file.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	format, err := content.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}

	cfg := resolveConfig(cmd)
	if err := cfg.LoadContent(); err != nil {
		return err
	}
	return content.Encode(cmd.OutOrStdout(), cfg.Portfolio, format)
}
