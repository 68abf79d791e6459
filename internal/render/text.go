package render

import (
	"strings"

	"lifeboard/internal/core"
)

// Text draws the grid with one glyph per cell, rows joined by sep.
func Text(g core.Grid, on, off, sep string) string {
	var b strings.Builder
	for row := range g {
		if row > 0 {
			b.WriteString(sep)
		}
		for col := range g[row] {
			if g[row][col] != 0 {
				b.WriteString(on)
			} else {
				b.WriteString(off)
			}
		}
	}
	return b.String()
}
