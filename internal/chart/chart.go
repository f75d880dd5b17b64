// Package chart renders record sets as terminal charts: horizontal bars,
// scatter plots, and connected lines, with optional small-multiples
// layout and multi-series coloring.
//
// Build functions are pure — they return the finished chart as a string
// and never touch stdout — so output is byte-identical for identical
// input. The Print wrappers add the I/O.
package chart

import (
	"fmt"
	"io"

	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/format"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/scale"
)

// Defaults for dot and line charts.
const (
	DefaultWidth        = 60
	DefaultHeight       = 20
	DefaultPanelsPerRow = 3
)

// Options controls dot and line chart rendering.
type Options struct {
	// Width is the plot area width in columns. If 0, defaults to 60.
	Width int
	// Height is the plot area height in rows. If 0, defaults to 20.
	Height int
	// Title is printed above the chart when non-empty.
	Title string
	// ColorBy names a category field; records sharing a value form a
	// colored series, with a legend line above the canvas.
	ColorBy string
	// SmallMultiples names a category field; one panel is rendered per
	// distinct value, tiled PanelsPerRow across.
	SmallMultiples string
	// FixedScales shares one X/Y domain across all panels, computed over
	// the entire dataset. Only meaningful with SmallMultiples.
	FixedScales bool
	// PanelsPerRow is the small-multiples tiling width. If 0, defaults to 3.
	PanelsPerRow int
	// FormatX overrides the X axis label formatter. The argument is the
	// numeric axis value (Unix seconds for date axes).
	FormatX func(float64) string
	// FormatY overrides the Y axis label formatter.
	FormatY func(float64) string
	// Renderer maps color tags to output. If nil, Plain (no color).
	Renderer canvas.Renderer
}

// normalized fills in defaults.
func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.PanelsPerRow <= 0 {
		o.PanelsPerRow = DefaultPanelsPerRow
	}
	if o.Renderer == nil {
		o.Renderer = canvas.Plain{}
	}
	return o
}

// xFormatter returns the X label formatter for an axis of the given kind:
// thousands-separated numbers, or YYYY-MM-DD for date axes.
func (o Options) xFormatter(kind record.Kind) func(float64) string {
	if o.FormatX != nil {
		return o.FormatX
	}
	if kind == record.KindTime {
		return func(v float64) string {
			return format.Date(unixTime(v))
		}
	}
	return defaultNumberLabel
}

// yFormatter returns the Y label formatter.
func (o Options) yFormatter() func(float64) string {
	if o.FormatY != nil {
		return o.FormatY
	}
	return defaultNumberLabel
}

func defaultNumberLabel(v float64) string {
	return format.Number(v, format.Options{Decimals: -1})
}

// domains computes (or adopts) the X and Y scales for one panel.
func domains(xs, ys []float64, fixedX, fixedY *scale.Linear) (scale.Linear, scale.Linear, error) {
	var xd, yd scale.Linear
	var err error
	if fixedX != nil {
		xd = *fixedX
	} else if xd, err = scale.DomainOf(xs); err != nil {
		return xd, yd, fmt.Errorf("x axis: %w", err)
	}
	if fixedY != nil {
		yd = *fixedY
	} else if yd, err = scale.DomainOf(ys); err != nil {
		return xd, yd, fmt.Errorf("y axis: %w", err)
	}
	return xd, yd, nil
}

// seriesAssignment maps each record to a series index by the first-seen
// order of its ColorBy value. With no ColorBy every record is series 0
// and no legend is drawn.
func seriesAssignment(records []record.Record, colorBy string) (indexOf []int, names []string) {
	indexOf = make([]int, len(records))
	if colorBy == "" {
		return indexOf, nil
	}
	seen := make(map[string]int)
	for i, r := range records {
		name := record.Label(r, colorBy)
		idx, ok := seen[name]
		if !ok {
			idx = len(names)
			seen[name] = idx
			names = append(names, name)
		}
		indexOf[i] = idx
	}
	return indexOf, names
}

// ─── Print wrappers ───────────────────────────────────────────────────────────

// PrintBar builds a bar chart and writes it to w.
func PrintBar(w io.Writer, records []record.Record, labelField, valueField string, opts BarOptions) error {
	out, err := BuildBar(records, labelField, valueField, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// PrintDot builds a dot chart and writes it to w.
func PrintDot(w io.Writer, records []record.Record, xField, yField string, opts Options) error {
	out, err := BuildDot(records, xField, yField, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// PrintLine builds a line chart and writes it to w.
func PrintLine(w io.Writer, records []record.Record, xField, yField string, opts Options) error {
	out, err := BuildLine(records, xField, yField, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
