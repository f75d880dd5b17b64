package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/chart"
)

var (
	barLabelField string
	barValueField string
	barWidth      int
	barTitle      string
	barTotalLabel string
	barCompact    bool
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Horizontal bar chart, one bar per record",
	Long: `Renders a horizontal bar chart with one labeled bar per record, the
formatted value, and its share of the total. The longest bar spans the
full width; a total row follows the bars.

Values must be non-negative numbers. Separator rows between bars can be
suppressed with --compact.`,
	Example: `  cat crime.jsonl | inkplot bar --label borough --value incidents
  inkplot bar --from budget --label dept --value spend --title "2026 budget" --compact
  cat medals.jsonl | inkplot bar --label country --value gold --total-label "All golds"`,
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

		width := barWidth
		if width <= 0 {
			width = deps.Config.BarWidth
		}

		w, closeOut, err := outWriter()
		if err != nil {
			return err
		}
		defer closeOut()

		err = chart.PrintBar(w, records, barLabelField, barValueField, chart.BarOptions{
			Width:      clampWidth(width, 30),
			Title:      barTitle,
			TotalLabel: barTotalLabel,
			Compact:    barCompact,
			Renderer:   deps.Renderer,
		})
		if err != nil {
			return err
		}
		footer(deps, len(records), started)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(barCmd)

	barCmd.Flags().StringVar(&barLabelField, "label", "", "field holding the category label (required)")
	barCmd.Flags().StringVar(&barValueField, "value", "", "field holding the bar value (required)")
	barCmd.Flags().IntVar(&barWidth, "width", 0,
		"bar area width in characters (default from config, fallback 40)")
	barCmd.Flags().StringVar(&barTitle, "title", "", "chart title")
	barCmd.Flags().StringVar(&barTotalLabel, "total-label", "", "label for the total row (default \"Total\")")
	barCmd.Flags().BoolVar(&barCompact, "compact", false, "no separator rows between bars")

	barCmd.MarkFlagRequired("label")
	barCmd.MarkFlagRequired("value")
}
