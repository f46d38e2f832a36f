// Package main is the portfolio site command: serve the site, export it as
// static files, check the content, or dump it.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devd.dev/internal/config"
	"devd.dev/internal/logging"
)

var (
	verbose     bool
	development bool
	contentPath string
	assetsDir   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal development portfolio site",
	Long: `portfolio renders a single-page portfolio with a hero, previous clients,
a project card grid and a resume section.

Content comes from a YAML or JSON file (--content or PORTFOLIO_CONTENT),
or from the built-in defaults when no file is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logging.Options{Verbose: verbose, Development: development})
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&development, "dev", false, "Human readable log output")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "Directory served at /image/")
}

// resolveConfig reads the environment, then applies any flags that were set
func resolveConfig(cmd *cobra.Command) *config.Config {
	cfg := config.FromEnv()
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = contentPath
	}
	if cmd.Flags().Changed("assets") {
		cfg.AssetsDir = assetsDir
	}
	return cfg
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
