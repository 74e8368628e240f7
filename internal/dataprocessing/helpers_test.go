package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/shared/testutil"
)

// sheetData is the content of one worksheet, header row first
type sheetData struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the sheets, in order, to a workbook under t.TempDir()
func writeWorkbook(t *testing.T, sheets ...sheetData) string {
	t.Helper()

	out := make([]testutil.Sheet, len(sheets))
	for i, s := range sheets {
		out[i] = testutil.Sheet{Name: s.name, Rows: s.rows}
	}
	return testutil.WriteWorkbook(t, t.TempDir(), "sales.xlsx", out...)
}

// mustTable builds a table from raw text columns
func mustTable(t *testing.T, names []string, cells map[string][]string) *Table {
	t.Helper()
	table, err := NewTableFromColumns(names, cells)
	require.NoError(t, err)
	return table
}
