// Package axis builds the textual borders of a chart: the X label row
// (domain min left-aligned, max right-aligned), tick rows of box-drawing
// glyphs, and the per-row Y label column. Label widths are measured in
// display cells via go-runewidth so wide characters don't misalign the
// grid.
package axis

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glyphs used for ticks and the frame.
const (
	TickX  = '─'
	TickY  = '┤'
	Corner = '└'
)

// XLabels builds the label row under the plot area: minLabel flush left,
// maxLabel flush right, blanks between. Fails when the two labels cannot
// fit side by side — the caller must widen the chart or shorten the
// labels via a formatting function.
func XLabels(width int, minLabel, maxLabel string) (string, error) {
	lw, rw := runewidth.StringWidth(minLabel), runewidth.StringWidth(maxLabel)
	if lw+rw > width {
		return "", fmt.Errorf(
			"axis labels %q and %q overlap: need %d columns, have %d (widen the chart or shorten labels)",
			minLabel, maxLabel, lw+rw, width)
	}
	return minLabel + strings.Repeat(" ", width-lw-rw) + maxLabel, nil
}

// XTicks builds the tick row between the plot area and the X labels.
func XTicks(width int) string {
	return strings.Repeat(string(TickX), width)
}

// Y is the left border of a chart: one label per canvas row plus the tick
// column. The top row carries the domain max, the bottom row the domain
// min, all rows padded to a uniform width.
type Y struct {
	labels []string
	width  int
}

// BuildY constructs the Y border for a chart of the given height.
func BuildY(height int, minLabel, maxLabel string) Y {
	w := runewidth.StringWidth(maxLabel)
	if mw := runewidth.StringWidth(minLabel); mw > w {
		w = mw
	}
	labels := make([]string, height)
	for r := range labels {
		switch r {
		case 0:
			labels[r] = pad(maxLabel, w)
		case height - 1:
			labels[r] = pad(minLabel, w)
		default:
			labels[r] = strings.Repeat(" ", w)
		}
	}
	return Y{labels: labels, width: w}
}

// Width is the display width of the label column.
func (y Y) Width() int { return y.width }

// Label returns the padded label for a canvas row.
func (y Y) Label(row int) string { return y.labels[row] }

// Gutter returns a blank string as wide as the label column, for aligning
// the X tick and label rows under the plot area.
func (y Y) Gutter() string { return strings.Repeat(" ", y.width) }

// pad right-aligns s in w display cells.
func pad(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
