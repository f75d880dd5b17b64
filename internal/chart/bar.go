package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/format"
	"github.com/jclemens/inkplot/internal/record"
)

// DefaultBarWidth is the bar area width when BarOptions.Width is 0.
const DefaultBarWidth = 40

// barGlyph is the filled block a bar is built from.
const barGlyph = "█"

// BarOptions controls horizontal bar chart rendering.
type BarOptions struct {
	// Width is the bar area width in columns. If 0, defaults to 40.
	Width int
	// Title is printed above the chart when non-empty.
	Title string
	// TotalLabel names the total row. If empty, "Total".
	TotalLabel string
	// Compact suppresses the blank separator rows between bars.
	Compact bool
	// FormatLabel overrides the category label formatter.
	FormatLabel func(record.Record) string
	// FormatValue overrides the value formatter.
	FormatValue func(float64) string
	// Renderer maps color tags to output. If nil, Plain (no color).
	Renderer canvas.Renderer
}

// BuildBar renders records as a horizontal bar chart and returns it as a
// string. One row per record: label, bar, formatted value, and the
// value's share of the total. The longest bar spans exactly Width cells;
// every other bar is round(value/max*Width). A total row follows the
// bars. Negative values are rejected.
func BuildBar(records []record.Record, labelField, valueField string, opts BarOptions) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("bar chart: no records to render")
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultBarWidth
	}
	totalLabel := opts.TotalLabel
	if totalLabel == "" {
		totalLabel = "Total"
	}
	r := opts.Renderer
	if r == nil {
		r = canvas.Plain{}
	}
	formatLabel := opts.FormatLabel
	if formatLabel == nil {
		formatLabel = func(rec record.Record) string { return record.Label(rec, labelField) }
	}
	formatValue := opts.FormatValue
	if formatValue == nil {
		formatValue = defaultNumberLabel
	}

	labels := make([]string, len(records))
	values := make([]float64, len(records))
	maxVal, total := 0.0, 0.0
	for i, rec := range records {
		v, err := record.Number(rec, valueField)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		if v < 0 {
			return "", fmt.Errorf("record %d: field %q: negative value %s not supported in bar chart",
				i, valueField, format.Plain(v))
		}
		labels[i] = formatLabel(rec)
		values[i] = v
		total += v
		if v > maxVal {
			maxVal = v
		}
	}

	// Column widths for alignment.
	labelW, valueW := 0, 0
	valueStrs := make([]string, len(records))
	for i := range records {
		if w := runewidth.StringWidth(labels[i]); w > labelW {
			labelW = w
		}
		valueStrs[i] = formatValue(values[i])
		if w := runewidth.StringWidth(valueStrs[i]); w > valueW {
			valueW = w
		}
	}

	var out []string
	if opts.Title != "" {
		out = append(out, opts.Title)
	}

	for i := range records {
		barLen := 0
		if maxVal > 0 {
			barLen = int(math.Round(values[i] / maxVal * float64(width)))
		}
		pct := 0.0
		if total > 0 {
			pct = values[i] / total * 100
		}
		bar := r.Sprint(canvas.Series(0), strings.Repeat(barGlyph, barLen)) +
			strings.Repeat(" ", width-barLen)

		out = append(out, fmt.Sprintf("%s  %s  %s  %s",
			padRight(labels[i], labelW),
			bar,
			padLeft(valueStrs[i], valueW),
			format.Number(pct, format.Options{Decimals: 1, Percent: true}),
		))
		if !opts.Compact && i < len(records)-1 {
			out = append(out, "")
		}
	}

	out = append(out, "", fmt.Sprintf("%s: %s", totalLabel, formatValue(total)))
	return strings.Join(out, "\n") + "\n", nil
}

// padRight left-aligns s in w display cells.
func padRight(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft right-aligns s in w display cells.
func padLeft(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
