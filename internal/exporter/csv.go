package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// utf8BOM lets spreadsheet programs detect UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes CSV files below one directory
type CSVWriter struct {
	logger *slog.Logger
	dir    string
}

// NewCSVWriter creates a writer rooted at dir
func NewCSVWriter(logger *slog.Logger, dir string) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, dir: dir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool
}

// WriteCSV writes a CSV file, replacing any existing one. Relative names
// are resolved against the writer's directory.
func (w *CSVWriter) WriteCSV(ctx context.Context, fileName string, options WriteOptions) (string, error) {
	fullPath := w.resolvePath(fileName)

	w.logger.DebugContext(ctx, "Writing CSV file",
		slog.String("file_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write(utf8BOM); err != nil {
			return "", fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return fullPath, nil
}

// WriteSummaries writes one <key>.csv per summary table with a label column
// and the summed value column. It returns the written paths in table order.
func (w *CSVWriter) WriteSummaries(ctx context.Context, tables []domain.SummaryTable) ([]string, error) {
	paths := make([]string, 0, len(tables))

	for _, table := range tables {
		valueColumn := table.ValueColumn
		if valueColumn == "" {
			valueColumn = domain.ColAfterDiscount
		}

		records := make([][]string, len(table.Rows))
		for i, row := range table.Rows {
			records[i] = []string{row.Label, formatValue(row.Value)}
		}

		path, err := w.WriteCSV(ctx, string(table.Key)+".csv", WriteOptions{
			Headers:   []string{"label", valueColumn},
			Records:   records,
			BOMPrefix: true,
		})
		if err != nil {
			return paths, errors.NewStorageError("failed to write summary csv", err).
				WithContext("summary", string(table.Key))
		}
		paths = append(paths, path)
	}

	w.logger.InfoContext(ctx, "Summary CSV files written",
		slog.String("dir", w.dir),
		slog.Int("count", len(paths)))
	return paths, nil
}

func (w *CSVWriter) resolvePath(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(w.dir, fileName)
}
