//go:build !integration

package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleResults = []RecordResult{
	{Name: "python", State: StatePostValidated, Errors: 0, Warnings: 1},
	{Name: "ruby", State: StateFailedLoad, Errors: 1, Warnings: 0},
	{Name: "go", State: StatePostValidated, Errors: 0, Warnings: 0},
}

func TestPrintResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResultsJSON(&buf, sampleResults))
	golden.RequireEqual(t, buf.Bytes())
}

func TestPrintResultsSummary(t *testing.T) {
	var buf bytes.Buffer
	printResultsSummary(&buf, sampleResults)

	out := buf.String()
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "ruby")
	assert.NotContains(t, out, "go ", "clean records are collapsed into the total")
	assert.Contains(t, out, "TOTAL (3 products)")
}

func TestPrintResultsSummary_CleanBuildIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	printResultsSummary(&buf, []RecordResult{
		{Name: "python", State: StatePostValidated},
	})
	assert.Empty(t, buf.String())
}
