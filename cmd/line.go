package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jclemens/inkplot/internal/chart"
	"github.com/jclemens/inkplot/internal/pipeline"
	"github.com/jclemens/inkplot/internal/record"
)

var (
	lineFlags      plotFlags
	lineFollow     bool
	lineMaxRedraws float64
)

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Connected line chart with labeled axes",
	Long: `Renders records as a connected line. When the data is denser than the
plot width, each column shows the mean of the points landing in it;
sparser data is bridged with straight segments.

With --follow, new JSONL lines arriving on stdin redraw the chart in
place (throttled by --max-redraws), for watching a feed build up.`,
	Example: `  cat unemployment.jsonl | inkplot line --x date --y rate
  inkplot line --from gdp --x quarter --y growth --title "GDP QoQ %"
  cat polls.jsonl | inkplot line --x date --y pct --color-by party
  tail -f ticks.jsonl | inkplot line --x time --y price --follow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lineFollow {
			return runFollow(&lineFlags)
		}
		return runPlot(&lineFlags, chart.PrintLine)
	},
}

// runFollow re-renders the line chart as records stream in. Redraws are
// throttled with a token bucket so a fast producer doesn't turn the
// terminal into flicker; the final state is always drawn at EOF.
func runFollow(p *plotFlags) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	if globalFlags.From != "" {
		return fmt.Errorf("--follow reads from stdin and cannot be combined with --from")
	}

	opts := p.options(deps)
	opts.Renderer = deps.Renderer

	limiter := rate.NewLimiter(rate.Limit(lineMaxRedraws), 1)
	isTTY := pipeline.IsTTY()

	var records []record.Record
	redraw := func() error {
		out, err := chart.BuildLine(records, p.xField, p.yField, opts)
		if err != nil {
			return err
		}
		if isTTY {
			fmt.Print("\x1b[H\x1b[2J")
		}
		fmt.Print(out)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		rec, err := pipeline.ParseLine(scanner.Text())
		if err != nil {
			return err
		}
		if rec == nil {
			continue
		}
		records = append(records, rec)

		// Charts need at least two points for a domain; build errors
		// before that are expected, not fatal.
		if len(records) >= 2 && limiter.Allow() {
			if err := redraw(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records read from input (is stdin empty?)")
	}
	return redraw()
}

func init() {
	rootCmd.AddCommand(lineCmd)
	lineFlags.register(lineCmd)

	lineCmd.Flags().BoolVar(&lineFollow, "follow", false,
		"redraw as new JSONL lines arrive on stdin")
	lineCmd.Flags().Float64Var(&lineMaxRedraws, "max-redraws", 4,
		"maximum redraws per second with --follow")
}
