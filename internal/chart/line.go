package chart

import (
	"math"

	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/scale"
)

// BuildLine renders records as a connected line chart and returns it as a
// string. When the data is denser than the plot width, each column shows
// the arithmetic mean of the points landing in it; when sparser, the gaps
// between consecutive points are bridged by straight digital segments.
func BuildLine(records []record.Record, xField, yField string, opts Options) (string, error) {
	return buildChart(records, xField, yField, opts, plotLines)
}

func plotLines(cv *canvas.Canvas, xs, ys []float64, seriesOf []int, xd, yd scale.Linear) error {
	nSeries := 0
	for _, s := range seriesOf {
		if s+1 > nSeries {
			nSeries = s + 1
		}
	}
	for si := 0; si < nSeries; si++ {
		if err := plotOneLine(cv, xs, ys, seriesOf, si, xd, yd); err != nil {
			return err
		}
	}
	return nil
}

// plotOneLine rasterizes one series: bucket points into columns by the X
// scale, average each bucket, interpolate across empty columns between
// the first and last occupied ones, then draw the line column by column.
// A step between adjacent columns gets a rounded corner at each end and a
// vertical run between them, all drawn in the newer column.
func plotOneLine(cv *canvas.Canvas, xs, ys []float64, seriesOf []int, si int, xd, yd scale.Linear) error {
	w, h := cv.Width(), cv.Height()

	sum := make([]float64, w)
	cnt := make([]int, w)
	for i := range xs {
		if seriesOf[i] != si {
			continue
		}
		col := xd.Cell(xs[i], w)
		sum[col] += ys[i]
		cnt[col]++
	}

	// rowOf[col] is the target row for each column, -1 where blank.
	rowOf := make([]int, w)
	first, last := -1, -1
	for col := 0; col < w; col++ {
		if cnt[col] == 0 {
			rowOf[col] = -1
			continue
		}
		rowOf[col] = yd.CellY(sum[col]/float64(cnt[col]), h)
		if first < 0 {
			first = col
		}
		last = col
	}
	if first < 0 {
		return nil // series contributed no points
	}

	// Bridge gaps between occupied columns with straight segments.
	prev := first
	for col := first + 1; col <= last; col++ {
		if rowOf[col] < 0 {
			continue
		}
		if col-prev > 1 {
			r0, r1 := rowOf[prev], rowOf[col]
			for c := prev + 1; c < col; c++ {
				frac := float64(c-prev) / float64(col-prev)
				rowOf[c] = int(math.Round(float64(r0) + frac*float64(r1-r0)))
			}
		}
		prev = col
	}

	tag := canvas.Series(si)
	if first == last {
		return cv.Set(rowOf[first], first, dotGlyph, tag)
	}
	if err := cv.Set(rowOf[first], first, '─', tag); err != nil {
		return err
	}
	for col := first + 1; col <= last; col++ {
		r, pr := rowOf[col], rowOf[col-1]
		if pr == r {
			if err := cv.Set(r, col, '─', tag); err != nil {
				return err
			}
			continue
		}

		// Step: corner at the old row, corner at the new one.
		into, from := '╭', '╯'
		if r > pr {
			into, from = '╰', '╮'
		}
		if err := cv.Set(r, col, into, tag); err != nil {
			return err
		}
		if err := cv.Set(pr, col, from, tag); err != nil {
			return err
		}

		lo, hi := r, pr
		if lo > hi {
			lo, hi = hi, lo
		}
		for fill := lo + 1; fill < hi; fill++ {
			if cv.At(fill, col).Glyph == ' ' {
				if err := cv.Set(fill, col, '│', tag); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
