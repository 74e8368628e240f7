package dataprocessing

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the record table: a rectangular set of named columns read from
// one sheet. No column is guaranteed to exist; callers check with Has.
type Table struct {
	df    dataframe.DataFrame
	names []string
	nrow  int
	sheet string
}

// newTable assembles a Table from equally long columns. A sheet with a
// header row but no data yields a table with columns and zero rows.
func newTable(sheet string, nrow int, columns []series.Series) (*Table, error) {
	t := &Table{nrow: nrow, sheet: sheet}
	if len(columns) == 0 {
		return t, nil
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build record table: %w", df.Err)
	}

	t.df = df
	t.names = df.Names()
	return t, nil
}

// NewTableFromColumns builds a table from raw text cells, applying the same
// coercion rules as the workbook loader. Column order follows names.
func NewTableFromColumns(names []string, cells map[string][]string) (*Table, error) {
	nrow := -1
	rows := make([][]string, 0)
	for _, name := range names {
		col := cells[name]
		if nrow == -1 {
			nrow = len(col)
		} else if len(col) != nrow {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(col), nrow)
		}
	}
	if nrow < 0 {
		nrow = 0
	}

	for i := 0; i < nrow; i++ {
		row := make([]string, len(names))
		for j, name := range names {
			row[j] = cells[name][i]
		}
		rows = append(rows, row)
	}

	return buildTable("", names, rows, dateParser{})
}

// Sheet is the name of the worksheet the table was read from
func (t *Table) Sheet() string {
	return t.sheet
}

// Len returns the number of records
func (t *Table) Len() int {
	return t.nrow
}

// Names returns the column names in table order
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether every named column is present
func (t *Table) Has(columns ...string) bool {
	return len(t.Missing(columns...)) == 0
}

// Missing returns the named columns that are absent, in argument order
func (t *Table) Missing(columns ...string) []string {
	var missing []string
	for _, c := range columns {
		if !t.hasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func (t *Table) hasColumn(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// Floats returns a numeric column with missing entries as NaN
func (t *Table) Floats(column string) ([]float64, bool) {
	if !t.hasColumn(column) {
		return nil, false
	}
	s := t.df.Col(column)
	if s.Type() != series.Float {
		return nil, false
	}

	values := s.Float()
	for i := range values {
		if s.Elem(i).IsNA() {
			values[i] = math.NaN()
		}
	}
	return values, true
}

// Strings returns a text column
func (t *Table) Strings(column string) ([]string, bool) {
	if !t.hasColumn(column) {
		return nil, false
	}
	s := t.df.Col(column)
	if s.Type() != series.String {
		return nil, false
	}
	return s.Records(), true
}
