// Package scale maps data domains onto fixed-size cell grids. A scale is
// the monotonic function value → cell index that rasterizers use to place
// glyphs; it is computed once per chart (or once per panel when small
// multiples use independent scales).
package scale

import (
	"fmt"
	"math"
)

// Linear maps [Min, Max] linearly onto [0, n) cells.
// Min == Max is the degenerate single-point domain: every value maps to
// the midpoint cell.
type Linear struct {
	Min float64
	Max float64
}

// DomainOf computes the observed min/max of vals.
func DomainOf(vals []float64) (Linear, error) {
	if len(vals) == 0 {
		return Linear{}, fmt.Errorf("scale: empty value sequence")
	}
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if math.IsNaN(v) {
			return Linear{}, fmt.Errorf("scale: non-numeric value in sequence")
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Linear{Min: min, Max: max}, nil
}

// Cell maps v onto a column index in [0, n). Values outside the domain
// clip to the first or last cell.
func (s Linear) Cell(v float64, n int) int {
	if s.Max == s.Min {
		return n / 2
	}
	c := int(math.Round((v - s.Min) / (s.Max - s.Min) * float64(n-1)))
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	return c
}

// CellY maps v onto a row index in [0, n), inverted so that larger values
// land on smaller row indices (top of canvas = Max).
func (s Linear) CellY(v float64, n int) int {
	return n - 1 - s.Cell(v, n)
}
