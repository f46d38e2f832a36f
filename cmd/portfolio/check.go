package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"devd.dev/internal/content"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the content for authoring mistakes",
	Long: `Validate the content file against its schema and constraints, look for
malformed tags and images missing from the assets directory.
Exits non-zero when any error is found.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := resolveConfig(cmd)
	opts := content.CheckOptions{AssetsDir: cfg.AssetsDir}

	var report *content.Report
	var err error
	if cfg.ContentPath == "" {
		report, err = content.Check(content.Default(), opts)
	} else {
		report, err = content.CheckFile(cfg.ContentPath, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, f := range report.Findings {
			fmt.Fprintln(out, f.String())
		}
		fmt.Fprintf(out, "%d errors, %d warnings, %d info (%d images, %d links)\n",
			report.Count(content.SeverityError),
			report.Count(content.SeverityWarning),
			report.Count(content.SeverityInfo),
			len(report.Images), len(report.Links))
	}

	if report.HasErrors() {
		return errors.New("content check failed")
	}
	return nil
}
