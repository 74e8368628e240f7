package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/validation"
)

// LoadOptions controls which sheet of the workbook is read
type LoadOptions struct {
	// SheetHint names the preferred sheet; the first sheet is used when
	// the workbook has no sheet by that name.
	SheetHint string
}

// Loader reads a sales workbook into a record table
type Loader struct {
	logger *slog.Logger
	opts   LoadOptions
}

// NewLoader creates a Loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger, opts LoadOptions) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, opts: opts}
}

// LoadWorkbook reads path with a default-logger Loader
func LoadWorkbook(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	return NewLoader(nil, opts).Load(ctx, path)
}

// Load opens the workbook, picks the sheet and returns the coerced table.
// A path that is not an existing regular file fails before anything is opened.
func (l *Loader) Load(ctx context.Context, path string) (*Table, error) {
	if err := validation.NewFileValidator(l.logger).ValidateWorkbook(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
	}

	sheet := selectSheet(sheets, l.opts.SheetHint)
	l.logger.InfoContext(ctx, "Selected worksheet",
		slog.String("sheet", sheet),
		slog.String("hint", l.opts.SheetHint),
		slog.Int("sheet_count", len(sheets)))

	// Raw values keep numbers and date serials free of cell number formats
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewParsingError("failed to read worksheet", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}

	var header []string
	var body [][]string
	if len(rows) > 0 {
		header, body = rows[0], rows[1:]
	}
	spellBoolCells(f, sheet, header, body)

	table, err := buildTable(sheet, header, body, dateParser{date1904: uses1904(f)})
	if err != nil {
		return nil, errors.NewParsingError("failed to coerce worksheet", err).WithContext("sheet", sheet)
	}

	l.logger.InfoContext(ctx, "Workbook loaded",
		slog.String("sheet", sheet),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Names())))

	return table, nil
}

// selectSheet returns hint if the workbook has a sheet by that exact name,
// otherwise the first sheet.
func selectSheet(sheets []string, hint string) string {
	if hint != "" {
		for _, name := range sheets {
			if name == hint {
				return name
			}
		}
	}
	return sheets[0]
}

// spellBoolCells rewrites boolean cells of text columns as True or False.
// Raw reads return them as 1 and 0.
func spellBoolCells(f *excelize.File, sheet string, header []string, body [][]string) {
	for col, name := range normalizeHeader(header, len(header)) {
		if !textSet[name] {
			continue
		}
		for i, row := range body {
			if col >= len(row) || (row[col] != "1" && row[col] != "0") {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				continue
			}
			if typ, err := f.GetCellType(sheet, axis); err != nil || typ != excelize.CellTypeBool {
				continue
			}
			if row[col] == "1" {
				row[col] = "True"
			} else {
				row[col] = "False"
			}
		}
	}
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
