package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// MissingText is what a blank cell of a text column becomes
const MissingText = "nan"

// dateLayout is how a parsed order_date is kept in the table
const dateLayout = "2006-01-02 15:04:05"

var textDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var (
	numericSet = toSet(domain.NumericColumns)
	textSet    = toSet(domain.TextColumns)
)

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// dateParser turns order_date cells into timestamps. Numeric cells are
// Excel serial dates in the workbook's epoch.
type dateParser struct {
	date1904 bool
}

func (p dateParser) parse(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, p.date1904)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber parses a numeric cell; anything unparseable is missing
func parseNumber(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// textValue coerces a cell to its string representation
func textValue(cell string) string {
	if cell == "" {
		return MissingText
	}
	return cell
}

// normalizeHeader names blank header cells "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... in order of appearance.
func normalizeHeader(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]bool, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		seen[candidate] = true
		names[i] = candidate
	}
	return names
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// buildTable coerces raw sheet cells into a typed record table.
// Fully blank rows are dropped; short rows are padded with blanks.
func buildTable(sheet string, header []string, rows [][]string, dates dateParser) (*Table, error) {
	width := len(header)
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) > width {
			width = len(row)
		}
		records = append(records, row)
	}

	names := normalizeHeader(header, width)
	nrow := len(records)

	cell := func(i, j int) string {
		if j < len(records[i]) {
			return records[i][j]
		}
		return ""
	}

	columns := make([]series.Series, 0, width+3)
	index := make(map[string]int, width+3)
	put := func(s series.Series) {
		if at, ok := index[s.Name]; ok {
			columns[at] = s
			return
		}
		index[s.Name] = len(columns)
		columns = append(columns, s)
	}

	var dateValues []time.Time
	var dateValid []bool

	for j, name := range names {
		switch {
		case numericSet[name]:
			values := make([]float64, nrow)
			for i := range values {
				values[i] = parseNumber(cell(i, j))
			}
			put(series.New(values, series.Float, name))

		case textSet[name]:
			values := make([]string, nrow)
			for i := range values {
				values[i] = textValue(cell(i, j))
			}
			put(series.New(values, series.String, name))

		case name == domain.ColOrderDate:
			dateValues = make([]time.Time, nrow)
			dateValid = make([]bool, nrow)
			values := make([]string, nrow)
			for i := range values {
				if t, ok := dates.parse(cell(i, j)); ok {
					dateValues[i], dateValid[i] = t, true
					values[i] = t.Format(dateLayout)
				}
			}
			put(series.New(values, series.String, name))

		default:
			values := make([]string, nrow)
			for i := range values {
				values[i] = cell(i, j)
			}
			put(series.New(values, series.String, name))
		}
	}

	if dateValues != nil {
		years := make([]float64, nrow)
		months := make([]float64, nrow)
		labels := make([]string, nrow)
		for i, t := range dateValues {
			if !dateValid[i] {
				years[i], months[i] = math.NaN(), math.NaN()
				continue
			}
			years[i] = float64(t.Year())
			months[i] = float64(t.Month())
			labels[i] = t.Format("2006-01")
		}
		put(series.New(years, series.Float, domain.ColYear))
		put(series.New(months, series.Float, domain.ColMonth))
		put(series.New(labels, series.String, domain.ColYearMonth))
	}

	return newTable(sheet, nrow, columns)
}
