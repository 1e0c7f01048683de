package console

import (
	"fmt"
	"strings"
)

// TableConfig describes a table for RenderTable.
type TableConfig struct {
	Title    string
	Headers  []string
	Rows     [][]string
	TotalRow []string
}

// RenderTable renders a plain-text table with aligned columns.
// Used for the end-of-build summary; deliberately unstyled so the output is
// stable under golden tests and readable in CI logs.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len(h)
	}
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range config.Rows {
		measure(row)
	}
	if len(config.TotalRow) > 0 {
		measure(config.TotalRow)
	}

	var sb strings.Builder
	if config.Title != "" {
		sb.WriteString(config.Title + "\n\n")
	}

	writeRow := func(row []string) {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%-*s", widths[i], cell)
		}
		sb.WriteString("\n")
	}

	writeRow(config.Headers)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	for _, row := range config.Rows {
		writeRow(row)
	}
	if len(config.TotalRow) > 0 {
		writeRow(config.TotalRow)
	}

	return sb.String()
}
