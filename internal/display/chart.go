package display

import (
	"math"
	"strings"

	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
)

// ChartRows is the number of terminal rows used by the chart. Each row
// carries two vertical units, so three rows give six units: enough for the
// five named levels with one to spare.
const ChartRows = 3

// BarHeight returns how many vertical units a sample fills: its ordinal
// plus one, so even Nominal shows a sliver. Unknown levels may exceed the
// chart and are clipped when drawn.
func BarHeight(p thermal.Pressure) uint64 {
	level := p.Level()
	if level == math.MaxUint64 {
		return level
	}
	return level + 1
}

// CellGlyph picks the glyph for one cell of a column of the given height.
// row counts down from the top of a chart that is rows tall.
//
// Row r covers units bottom = (rows-1-r)*2+1 and top = bottom+1: it is a
// full block when the bar reaches top, a lower half block when it only
// reaches bottom, and blank otherwise.
func CellGlyph(height uint64, row, rows int) rune {
	bottom := uint64(rows-1-row)*2 + 1
	top := bottom + 1
	switch {
	case height >= top:
		return ui.GlyphFull
	case height >= bottom:
		return ui.GlyphHalf
	default:
		return ui.GlyphBlank
	}
}

// Column returns the glyphs of one sample's column, top row first.
func Column(p thermal.Pressure, rows int) []rune {
	height := BarHeight(p)
	col := make([]rune, rows)
	for row := 0; row < rows; row++ {
		col[row] = CellGlyph(height, row, rows)
	}
	return col
}

// ChartLines renders samples as rows lines of coloured block glyphs, one
// column per sample, oldest on the left. At most width columns are drawn;
// when there are more samples than that, the most recent ones win. Columns
// past the last sample are left empty.
func ChartLines(samples []thermal.Pressure, width, rows int) []string {
	if width < 1 {
		width = 1
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	columns := make([][]rune, len(samples))
	for i, p := range samples {
		columns[i] = Column(p, rows)
	}

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		// Consecutive columns of the same level share one styled run.
		for start := 0; start < len(samples); {
			end := start + 1
			for end < len(samples) && samples[end] == samples[start] {
				end++
			}
			run := make([]rune, 0, end-start)
			for i := start; i < end; i++ {
				run = append(run, columns[i][row])
			}
			sb.WriteString(ui.ColumnStyle(samples[start]).Render(string(run)))
			start = end
		}
		lines[row] = sb.String()
	}
	return lines
}
