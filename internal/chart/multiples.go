package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/scale"
)

// panelGap separates panels tiled on the same row.
const panelGap = "   "

// buildMultiples renders one panel per distinct value of the split field
// and tiles them row-major, PanelsPerRow across. With FixedScales the X
// and Y domains are computed once over the entire dataset so magnitudes
// compare across panels; otherwise each panel scales independently.
func buildMultiples(records []record.Record, kind record.Kind, xs, ys []float64,
	seriesOf []int, names []string, opts Options, plot plotFunc) (string, error) {

	// Partition record indices by split value, first-seen order.
	order := []string{}
	groups := map[string][]int{}
	for i, r := range records {
		key := record.Label(r, opts.SmallMultiples)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var fixedX, fixedY *scale.Linear
	if opts.FixedScales {
		xd, err := scale.DomainOf(xs)
		if err != nil {
			return "", err
		}
		yd, err := scale.DomainOf(ys)
		if err != nil {
			return "", err
		}
		fixedX, fixedY = &xd, &yd
	}

	panels := make([][]string, 0, len(order))
	for _, key := range order {
		idx := groups[key]
		pxs := make([]float64, len(idx))
		pys := make([]float64, len(idx))
		pseries := make([]int, len(idx))
		for j, i := range idx {
			pxs[j], pys[j], pseries[j] = xs[i], ys[i], seriesOf[i]
		}
		body, err := panelBody(kind, pxs, pys, pseries, opts, fixedX, fixedY, plot)
		if err != nil {
			return "", err
		}
		panel := append([]string{opts.Renderer.Sprint(canvas.TagLabel, key)}, body...)
		panels = append(panels, panel)
	}

	var out []string
	if opts.Title != "" {
		out = append(out, opts.Title)
	}
	if len(names) > 0 {
		out = append(out, legendLine(names, opts.Renderer))
	}
	out = append(out, tile(panels, opts.PanelsPerRow)...)
	return strings.Join(out, "\n") + "\n", nil
}

// tile arranges panels into rows of perRow, joining their lines side by
// side. Lipgloss measures display width so styled lines pad correctly.
func tile(panels [][]string, perRow int) []string {
	var out []string
	for start := 0; start < len(panels); start += perRow {
		end := start + perRow
		if end > len(panels) {
			end = len(panels)
		}
		group := panels[start:end]

		tall := 0
		widths := make([]int, len(group))
		for i, p := range group {
			if len(p) > tall {
				tall = len(p)
			}
			for _, line := range p {
				if w := lipgloss.Width(line); w > widths[i] {
					widths[i] = w
				}
			}
		}

		for row := 0; row < tall; row++ {
			parts := make([]string, len(group))
			for i, p := range group {
				line := ""
				if row < len(p) {
					line = p[row]
				}
				if gap := widths[i] - lipgloss.Width(line); gap > 0 && i < len(group)-1 {
					line += strings.Repeat(" ", gap)
				}
				parts[i] = line
			}
			out = append(out, strings.TrimRight(strings.Join(parts, panelGap), " "))
		}
		if end < len(panels) {
			out = append(out, "")
		}
	}
	return out
}
