//go:build !integration

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	got := RenderTable(TableConfig{
		Headers: []string{"Product", "Errors"},
		Rows: [][]string{
			{"python", "3"},
			{"go", "0"},
		},
	})

	want := "" +
		"Product  Errors\n" +
		"-------  ------\n" +
		"python   3     \n" +
		"go       0     \n"
	assert.Equal(t, want, got)
}

func TestRenderTable_WideCellsStretchColumns(t *testing.T) {
	got := RenderTable(TableConfig{
		Headers: []string{"Product", "Errors"},
		Rows: [][]string{
			{"a-very-long-product-name", "1"},
		},
	})

	want := "" +
		"Product                   Errors\n" +
		"------------------------  ------\n" +
		"a-very-long-product-name  1     \n"
	assert.Equal(t, want, got)
}

func TestRenderTable_TitleAndTotal(t *testing.T) {
	got := RenderTable(TableConfig{
		Title:   "Summary",
		Headers: []string{"Product", "Errors"},
		Rows: [][]string{
			{"python", "3"},
		},
		TotalRow: []string{"TOTAL", "3"},
	})

	want := "Summary\n" +
		"\n" +
		"Product  Errors\n" +
		"-------  ------\n" +
		"python   3     \n" +
		"TOTAL    3     \n"
	assert.Equal(t, want, got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{Rows: [][]string{{"x"}}}))
}
