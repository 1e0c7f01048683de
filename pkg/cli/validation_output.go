package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/endoflife-date/eolint/pkg/console"
)

// printResultsJSON writes the per-record results as a JSON array, one object
// per record, for machine consumption.
func printResultsJSON(w io.Writer, results []RecordResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// printResultsSummary renders the end-of-build summary table. Records with
// nothing to report are collapsed into the total row so a clean build stays
// quiet.
func printResultsSummary(w io.Writer, results []RecordResult) {
	var rows [][]string
	totalErrors, totalWarnings := 0, 0
	for _, result := range results {
		totalErrors += result.Errors
		totalWarnings += result.Warnings
		if result.Errors == 0 && result.Warnings == 0 {
			continue
		}
		rows = append(rows, []string{
			result.Name,
			string(result.State),
			strconv.Itoa(result.Errors),
			strconv.Itoa(result.Warnings),
		})
	}

	if len(rows) == 0 {
		return
	}

	table := console.RenderTable(console.TableConfig{
		Headers: []string{"Product", "State", "Errors", "Warnings"},
		Rows:    rows,
		TotalRow: []string{
			fmt.Sprintf("TOTAL (%d products)", len(results)),
			"",
			strconv.Itoa(totalErrors),
			strconv.Itoa(totalWarnings),
		},
	})
	fmt.Fprint(w, table)
}
