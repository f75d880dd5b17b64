package chart

import (
	"strings"

	"github.com/jclemens/inkplot/internal/canvas"
)

// legendGlyph is the colored bullet shown before each series name.
const legendGlyph = "●"

// legendLine renders one bullet + name pair per series, space-joined, in
// first-seen series order.
func legendLine(names []string, r canvas.Renderer) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = r.Sprint(canvas.Series(i), legendGlyph) + " " + name
	}
	return strings.Join(parts, "  ")
}
