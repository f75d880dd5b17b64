// Package canvas provides the mutable character grid that chart
// rasterizers draw into, plus the renderers that turn a finished grid
// into terminal lines.
//
// The grid itself is presentation-free: each cell holds a glyph and a
// semantic color tag (axis, label, series N). Mapping tags to ANSI escape
// sequences is the renderer's job, so the same rasterized chart can be
// emitted with or without color.
package canvas

import "fmt"

// Tag is a semantic color marker attached to a cell or a piece of text.
type Tag int

const (
	// TagNone renders in the terminal's default color.
	TagNone Tag = iota
	// TagAxis marks tick and frame glyphs.
	TagAxis
	// TagLabel marks axis label text.
	TagLabel

	tagSeriesBase
)

// Series returns the tag for the i-th data series (first-seen order).
func Series(i int) Tag {
	return tagSeriesBase + Tag(i)
}

// SeriesIndex reports the series number of a series tag, or -1.
func (t Tag) SeriesIndex() int {
	if t < tagSeriesBase {
		return -1
	}
	return int(t - tagSeriesBase)
}

// Cell is one character position on the grid.
type Cell struct {
	Glyph rune
	Tag   Tag
}

// Canvas is a height × width grid of cells, blank until rasterizers write
// into it. It is owned exclusively by the chart build that allocated it.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New allocates a blank canvas. Dimensions must be positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: dimensions must be positive, got %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for r := range cells {
		row := make([]Cell, width)
		for c := range row {
			row[c] = Cell{Glyph: ' '}
		}
		cells[r] = row
	}
	return &Canvas{width: width, height: height, cells: cells}, nil
}

// Width returns the column count.
func (c *Canvas) Width() int { return c.width }

// Height returns the row count.
func (c *Canvas) Height() int { return c.height }

// Set writes a glyph at (row, col), overwriting any previous glyph there.
// Last writer wins; rasterizers iterate points in input order so
// overlapping points produce deterministic output. Writes outside the
// grid are a programming error and are rejected.
func (c *Canvas) Set(row, col int, glyph rune, tag Tag) error {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return fmt.Errorf("canvas: cell (%d,%d) outside %dx%d grid", row, col, c.width, c.height)
	}
	c.cells[row][col] = Cell{Glyph: glyph, Tag: tag}
	return nil
}

// At returns the cell at (row, col). Out-of-range reads return a blank.
func (c *Canvas) At(row, col int) Cell {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return Cell{Glyph: ' '}
	}
	return c.cells[row][col]
}

// Row returns a copy of one row of cells.
func (c *Canvas) Row(row int) []Cell {
	out := make([]Cell, c.width)
	copy(out, c.cells[row])
	return out
}

// Renderer turns cells and tagged text into output strings.
type Renderer interface {
	// Line renders one row of cells.
	Line(cells []Cell) string
	// Sprint renders free text (labels, legends, totals) under a tag.
	Sprint(tag Tag, s string) string
}

// Render emits every canvas row through r, top to bottom.
func (c *Canvas) Render(r Renderer) []string {
	lines := make([]string, c.height)
	for row := 0; row < c.height; row++ {
		lines[row] = r.Line(c.cells[row])
	}
	return lines
}
