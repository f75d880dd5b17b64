package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/app"
	"github.com/jclemens/inkplot/internal/chart"
	"github.com/jclemens/inkplot/internal/record"
)

// plotFlags are shared by the dot and line commands.
type plotFlags struct {
	xField       string
	yField       string
	width        int
	height       int
	title        string
	colorBy      string
	multiples    string
	fixedScales  bool
	panelsPerRow int
}

// register wires the shared plot flag set onto a command.
func (p *plotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.xField, "x", "", "field for the X axis: numbers or YYYY-MM-DD dates (required)")
	cmd.Flags().StringVar(&p.yField, "y", "", "field for the Y axis: numbers (required)")
	cmd.Flags().IntVar(&p.width, "width", 0,
		"plot width in characters (default from config, fallback 60)")
	cmd.Flags().IntVar(&p.height, "height", 0,
		"plot height in rows (default from config, fallback 20)")
	cmd.Flags().StringVar(&p.title, "title", "", "chart title")
	cmd.Flags().StringVar(&p.colorBy, "color-by", "",
		"category field for multi-series coloring with a legend")
	cmd.Flags().StringVar(&p.multiples, "small-multiples", "",
		"category field: render one panel per distinct value")
	cmd.Flags().BoolVar(&p.fixedScales, "fixed-scales", false,
		"share one axis domain across all panels (with --small-multiples)")
	cmd.Flags().IntVar(&p.panelsPerRow, "panels-per-row", 0,
		"panels per row in small-multiples layout (default from config, fallback 3)")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
}

// options resolves the flag set against config defaults.
func (p *plotFlags) options(deps *app.Deps) chart.Options {
	width := deps.Config.PlotWidth
	height := deps.Config.PlotHeight
	panels := deps.Config.PanelsPerRow
	if p.width > 0 {
		width = p.width
	}
	if p.height > 0 {
		height = p.height
	}
	if p.panelsPerRow > 0 {
		panels = p.panelsPerRow
	}
	return chart.Options{
		Width:          clampWidth(width, 15),
		Height:         height,
		Title:          p.title,
		ColorBy:        p.colorBy,
		SmallMultiples: p.multiples,
		FixedScales:    p.fixedScales,
		PanelsPerRow:   panels,
	}
}

// runPlot is the shared dot/line pipeline: deps → records → options →
// print → footer.
func runPlot(p *plotFlags, print func(io.Writer, []record.Record, string, string, chart.Options) error) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	started := time.Now()

	records, err := readInput(deps)
	if err != nil {
		return err
	}

	opts := p.options(deps)
	opts.Renderer = deps.Renderer

	w, closeOut, err := outWriter()
	if err != nil {
		return err
	}
	defer closeOut()

	if err := print(w, records, p.xField, p.yField, opts); err != nil {
		return err
	}
	footer(deps, len(records), started)
	return nil
}

var dotFlags plotFlags

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Scatter chart of records on an X/Y grid",
	Long: `Renders records as dots on a character grid. X values may be numbers
or dates (uniformly — mixing the two is an error); Y values must be
numbers. Dots landing on the same cell overwrite in input order.

With --small-multiples one panel is drawn per category value; add
--fixed-scales to share axis ranges across panels so magnitudes compare.`,
	Example: `  cat polls.jsonl | inkplot dot --x date --y pct
  cat cities.jsonl | inkplot dot --x density --y rent --color-by region
  cat polls.jsonl | inkplot dot --x date --y pct --small-multiples party --fixed-scales --panels-per-row 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(&dotFlags, chart.PrintDot)
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotFlags.register(dotCmd)
}
