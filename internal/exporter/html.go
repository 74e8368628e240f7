package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
)

// HTMLWriter persists the rendered report
type HTMLWriter struct {
	logger *slog.Logger
}

// NewHTMLWriter creates an HTMLWriter. A nil logger falls back to slog.Default().
func NewHTMLWriter(logger *slog.Logger) *HTMLWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTMLWriter{logger: logger}
}

// Write replaces path with document. The document is complete before this
// is called, so a failure earlier in the run never touches path.
func (w *HTMLWriter) Write(ctx context.Context, path string, document []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}

	if err := os.WriteFile(path, document, 0644); err != nil {
		return errors.NewStorageError("failed to write report", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "Report written",
		slog.String("path", path),
		slog.Int("bytes", len(document)))
	return nil
}
