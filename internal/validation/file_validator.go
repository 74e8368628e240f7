package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
)

// WorkbookExtensions are the spreadsheet formats the loader can open
var WorkbookExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// FileValidator checks input files before they are opened
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks that path is an existing, readable regular file.
// Anything else is reported as not found.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		v.logger.Error("Input file does not exist",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewFileNotFoundError(path)
	}
	if !info.Mode().IsRegular() {
		v.logger.Error("Input path is not a regular file",
			slog.String("path", path))
		return errors.NewFileNotFoundError(path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("input file is not readable", err).WithContext("path", path)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateWorkbook checks that path is a spreadsheet the loader can open
func (v *FileValidator) ValidateWorkbook(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isWorkbookExtension(ext) {
		v.logger.Error("File is not an Excel workbook",
			slog.String("file", path),
			slog.String("extension", ext))
		return errors.NewValidationError("file is not an Excel workbook").
			WithContext("path", path).
			WithContext("extension", ext).
			WithHint("Save the data as .xlsx and try again.")
	}

	// Lock files left behind by an open Excel session
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Refusing temporary Excel file",
			slog.String("file", path))
		return errors.NewValidationError("file is a temporary Excel lock file").
			WithContext("path", path).
			WithHint("Close the workbook in Excel and point to the real file.")
	}

	return nil
}

func isWorkbookExtension(ext string) bool {
	for _, e := range WorkbookExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
