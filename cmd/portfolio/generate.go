package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"devd.dev/internal/content"
	"devd.dev/internal/generation"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the site as static files",
	Long: `Render index.html, the JSON API documents, the stylesheet and icons,
and a copy of the image directory into <output-dir>.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)
	if err := cfg.LoadContent(); err != nil {
		return err
	}

	exporter := generation.NewExporter(content.NewStore(cfg.Portfolio), cfg.AssetsDir, logger)
	manifest, err := exporter.Export(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(manifest.Files), args[0])
	return nil
}
