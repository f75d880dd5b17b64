// Package cmd implements the inkplot CLI command tree.
// This file defines the root command and registers all global persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/app"
	"github.com/jclemens/inkplot/internal/config"
)

// globalFlags holds the parsed values of all persistent (global) flags.
// Commands read from this struct via the deps they receive.
var globalFlags struct {
	Format  string
	Out     string
	From    string
	DBPath  string
	NoColor bool
	Quiet   bool
	Verbose bool
}

// rootCmd is the base command. Running `inkplot` with no subcommand
// prints help.
var rootCmd = &cobra.Command{
	Use:   "inkplot",
	Short: "inkplot — terminal charts for data journalists",
	Long: `inkplot renders JSONL record streams as terminal charts: horizontal
bars, scatter plots, and line charts, with small-multiples layout for
category comparisons.

Quick start:
  cat crime.jsonl | inkplot bar --label borough --value incidents
  cat unemployment.jsonl | inkplot line --x date --y rate
  cat polls.jsonl | inkplot dot --x date --y pct --small-multiples party --fixed-scales

Datasets can be saved locally and charted later:
  cat crime.jsonl | inkplot store put crime
  inkplot bar --from crime --label borough --value incidents`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildDeps resolves config and constructs the dependency container.
// Called at the start of each command's RunE.
func buildDeps() (*app.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides
	cfg.Quiet = globalFlags.Quiet
	cfg.Verbose = globalFlags.Verbose
	if globalFlags.NoColor {
		cfg.NoColor = true
	}
	if globalFlags.Format != "" {
		cfg.Format = globalFlags.Format
	}
	if globalFlags.DBPath != "" {
		cfg.DBPath = globalFlags.DBPath
	}

	return app.New(cfg), nil
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&globalFlags.Format, "format", "",
		"output format for record commands: table|json|jsonl|csv|tsv|md (default: table)")
	pf.StringVar(&globalFlags.Out, "out", "",
		"write output to file instead of stdout")
	pf.StringVar(&globalFlags.From, "from", "",
		"read records from a stored dataset instead of stdin")
	pf.StringVar(&globalFlags.DBPath, "db", "",
		"dataset store path (overrides env INKPLOT_DB_PATH and config.json)")
	pf.BoolVar(&globalFlags.NoColor, "no-color", false,
		"disable ANSI colors (also honored via env NO_COLOR)")
	pf.BoolVar(&globalFlags.Quiet, "quiet", false,
		"suppress all non-error output")
	pf.BoolVar(&globalFlags.Verbose, "verbose", false,
		"show record counts and timing after output")
}
