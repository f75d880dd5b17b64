package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/pipeline"
	"github.com/jclemens/inkplot/internal/transform"
	"github.com/jclemens/inkplot/internal/util"
)

var (
	filterWhere  []string
	filterField  string
	filterAfter  string
	filterBefore string
	filterSort   string
	filterDesc   bool
	filterHead   int
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter and sort a record stream (JSONL in, JSONL out)",
	Long: `Shapes a record stream before charting: equality filters, date-range
filters, sorting, and head. Reads JSONL from stdin (or --from a stored
dataset) and writes JSONL to stdout, so filters chain with the chart
commands.`,
	Example: `  cat polls.jsonl | inkplot filter --where party=Labour | inkplot line --x date --y pct
  cat crime.jsonl | inkplot filter --field date --after 2024-01-01 --before 2024-06-30 | inkplot table
  inkplot filter --from spending --sort amount --desc --head 10 | inkplot bar --label dept --value amount`,
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

		for _, clause := range filterWhere {
			if records, err = transform.Where(records, clause); err != nil {
				return err
			}
		}

		if filterAfter != "" || filterBefore != "" {
			var after, before time.Time
			if filterAfter != "" {
				if after, err = util.ParseDate(filterAfter); err != nil {
					return err
				}
			}
			if filterBefore != "" {
				if before, err = util.ParseDate(filterBefore); err != nil {
					return err
				}
			}
			if records, err = transform.Between(records, filterField, after, before); err != nil {
				return err
			}
		}

		if filterSort != "" {
			records = transform.SortBy(records, filterSort, filterDesc)
		}
		records = transform.Head(records, filterHead)

		if len(records) == 0 {
			warn(deps, "no records left after filtering — downstream chart commands will fail")
		}

		w, closeOut, err := outWriter()
		if err != nil {
			return err
		}
		defer closeOut()

		if err := pipeline.WriteJSONL(w, records); err != nil {
			return err
		}
		footer(deps, len(records), started)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringArrayVar(&filterWhere, "where", nil,
		"keep records where field=value (repeatable)")
	filterCmd.Flags().StringVar(&filterField, "field", "date",
		"date field for --after/--before")
	filterCmd.Flags().StringVar(&filterAfter, "after", "",
		"keep records on or after this date (YYYY-MM-DD)")
	filterCmd.Flags().StringVar(&filterBefore, "before", "",
		"keep records on or before this date (YYYY-MM-DD)")
	filterCmd.Flags().StringVar(&filterSort, "sort", "", "sort by this field")
	filterCmd.Flags().BoolVar(&filterDesc, "desc", false, "sort descending")
	filterCmd.Flags().IntVar(&filterHead, "head", 0, "keep only the first N records (0 = all)")
}
