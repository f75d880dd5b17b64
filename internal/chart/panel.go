package chart

import (
	"strings"
	"time"

	"github.com/jclemens/inkplot/internal/axis"
	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/scale"
)

// plotFunc rasterizes one panel's points into cv. xs and ys are the
// numeric point coordinates, seriesOf the per-point series index.
type plotFunc func(cv *canvas.Canvas, xs, ys []float64, seriesOf []int, xd, yd scale.Linear) error

// buildChart is the shared dot/line pipeline: extract → scale → rasterize
// → border → assemble. It dispatches to the small-multiples composer when
// a split field is set.
func buildChart(records []record.Record, xField, yField string, opts Options, plot plotFunc) (string, error) {
	opts = opts.normalized()

	kind, xs, err := record.XValues(records, xField)
	if err != nil {
		return "", err
	}
	ys, err := record.Numbers(records, yField)
	if err != nil {
		return "", err
	}
	seriesOf, names := seriesAssignment(records, opts.ColorBy)

	if opts.SmallMultiples != "" {
		return buildMultiples(records, kind, xs, ys, seriesOf, names, opts, plot)
	}

	body, err := panelBody(kind, xs, ys, seriesOf, opts, nil, nil, plot)
	if err != nil {
		return "", err
	}

	var out []string
	if opts.Title != "" {
		out = append(out, opts.Title)
	}
	if len(names) > 0 {
		out = append(out, legendLine(names, opts.Renderer))
	}
	out = append(out, body...)
	return strings.Join(out, "\n") + "\n", nil
}

// panelBody renders one plot area with its axes and returns its lines.
// fixedX/fixedY override the per-panel domains for fixed-scale multiples.
func panelBody(kind record.Kind, xs, ys []float64, seriesOf []int, opts Options,
	fixedX, fixedY *scale.Linear, plot plotFunc) ([]string, error) {

	xd, yd, err := domains(xs, ys, fixedX, fixedY)
	if err != nil {
		return nil, err
	}

	fx := opts.xFormatter(kind)
	fy := opts.yFormatter()

	// Validate label fit before allocating anything — no partial output.
	xLabels, err := axis.XLabels(opts.Width, fx(xd.Min), fx(xd.Max))
	if err != nil {
		return nil, err
	}

	cv, err := canvas.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := plot(cv, xs, ys, seriesOf, xd, yd); err != nil {
		return nil, err
	}

	yb := axis.BuildY(opts.Height, fy(yd.Min), fy(yd.Max))
	r := opts.Renderer

	lines := make([]string, 0, opts.Height+2)
	for row := 0; row < opts.Height; row++ {
		lines = append(lines,
			r.Sprint(canvas.TagLabel, yb.Label(row))+
				r.Sprint(canvas.TagAxis, string(axis.TickY))+
				r.Line(cv.Row(row)))
	}
	lines = append(lines, yb.Gutter()+r.Sprint(canvas.TagAxis, string(axis.Corner)+axis.XTicks(opts.Width)))
	lines = append(lines, yb.Gutter()+" "+r.Sprint(canvas.TagLabel, xLabels))
	return lines, nil
}

// unixTime converts a numeric axis value back to a time for labeling.
func unixTime(v float64) time.Time {
	return time.Unix(int64(v), 0).UTC()
}
