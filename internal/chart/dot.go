package chart

import (
	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/scale"
)

// dotGlyph is the marker written for each scatter point.
const dotGlyph = '●'

// BuildDot renders records as a scatter chart and returns it as a string.
// X values must be uniformly numbers or uniformly dates; Y values must be
// numbers. Points sharing a cell overwrite in input order.
func BuildDot(records []record.Record, xField, yField string, opts Options) (string, error) {
	return buildChart(records, xField, yField, opts, plotDots)
}

func plotDots(cv *canvas.Canvas, xs, ys []float64, seriesOf []int, xd, yd scale.Linear) error {
	w, h := cv.Width(), cv.Height()
	for i := range xs {
		col := xd.Cell(xs[i], w)
		row := yd.CellY(ys[i], h)
		if err := cv.Set(row, col, dotGlyph, canvas.Series(seriesOf[i])); err != nil {
			return err
		}
	}
	return nil
}
