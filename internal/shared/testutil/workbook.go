package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is the content of one worksheet, header row first
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// SalesHeader is the column layout of the sample workbook
var SalesHeader = []interface{}{"order_date", "category", "payment_method", "sku_name", "customer_id", "after_discount"}

// SalesRows holds three orders by two customers worth 300 in total; the
// third order has no after_discount value.
var SalesRows = [][]interface{}{
	{"2024-01-15", "Books", "COD", "Novel", "a", 100},
	{"2024-02-03", "Home", "Card", "Lamp", "b", 200},
	{"2024-02-20", "Books", "COD", "Novel", "a", nil},
}

// SalesSheet returns a "df" sheet with the given header and rows
func SalesSheet(header []interface{}, rows [][]interface{}) Sheet {
	return Sheet{Name: "df", Rows: append([][]interface{}{header}, rows...)}
}

// WriteWorkbook saves the sheets, in order, as dir/name and returns the path
func WriteWorkbook(t testing.TB, dir, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sheet.Name, cell, &values))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}
