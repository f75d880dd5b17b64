package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/render"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render records as a table (or csv/json/md via --format)",
	Long: `Reads records from stdin (or --from a stored dataset) and renders them
in the format selected by --format: table, json, jsonl, csv, tsv, or md.
Columns are the union of record fields, sorted by name.`,
	Example: `  cat crime.jsonl | inkplot table
  inkplot table --from crime --format csv --out crime.csv
  cat polls.jsonl | inkplot table --format md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		started := time.Now()

		records, err := readInput(deps)
		if err != nil {
			return err
		}

		if err := render.RenderTo(globalFlags.Out, records, deps.Config.Format); err != nil {
			return err
		}
		footer(deps, len(records), started)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
