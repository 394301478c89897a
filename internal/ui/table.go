package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable renders headers and rows as an aligned text table.
// Cells are plain (unstyled) strings; styling is applied per line by
// the caller.
func formatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			b.WriteString(cell)
			if i == len(row)-1 {
				b.WriteByte('\n')
				continue
			}
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
		}
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// truncateCell limits a cell to max columns, appending an ellipsis
// when it was cut.
func truncateCell(value string, max int) string {
	if max <= 0 || runewidth.StringWidth(value) <= max {
		return value
	}
	return runewidth.Truncate(value, max, "…")
}
