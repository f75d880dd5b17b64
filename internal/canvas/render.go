package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// seriesPalette is Paul Tol's qualitative palette, designed for
// colorblind accessibility. Series colors are assigned from it in
// first-seen order, cycling when exhausted.
// See: https://personal.sron.nl/~pault/
var seriesPalette = []string{
	"#4477AA", // blue
	"#EE6677", // rose
	"#228833", // green
	"#CCBB44", // olive
	"#66CCEE", // cyan
	"#AA3377", // purple
	"#BBBBBB", // grey
	"#EE8866", // orange
	"#44BB99", // teal
	"#FFAABB", // pink
}

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66CCEE"))
)

// seriesStyle returns the lipgloss style for series index i.
func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(seriesPalette[i%len(seriesPalette)]))
}

// styleFor maps a semantic tag to its style. TagNone has no style.
func styleFor(tag Tag) (lipgloss.Style, bool) {
	switch {
	case tag == TagAxis:
		return axisStyle, true
	case tag == TagLabel:
		return labelStyle, true
	case tag.SeriesIndex() >= 0:
		return seriesStyle(tag.SeriesIndex()), true
	}
	return lipgloss.Style{}, false
}

// Plain renders glyphs with no escape sequences — for piped output,
// NO_COLOR, and tests that assert exact bytes.
type Plain struct{}

func (Plain) Line(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

func (Plain) Sprint(_ Tag, s string) string { return s }

// ANSI renders tagged cells through lipgloss styles. Runs of cells
// sharing a tag are styled together to keep escape overhead down.
type ANSI struct{}

func (ANSI) Line(cells []Cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j].Tag == cells[i].Tag {
			j++
		}
		var run strings.Builder
		for _, c := range cells[i:j] {
			run.WriteRune(c.Glyph)
		}
		if style, ok := styleFor(cells[i].Tag); ok && strings.TrimSpace(run.String()) != "" {
			b.WriteString(style.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		i = j
	}
	return b.String()
}

func (ANSI) Sprint(tag Tag, s string) string {
	if style, ok := styleFor(tag); ok {
		return style.Render(s)
	}
	return s
}

// PaletteSize reports how many distinct series colors exist before the
// palette cycles.
func PaletteSize() int { return len(seriesPalette) }
