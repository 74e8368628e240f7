package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
)

func TestFileValidator_ValidateWorkbook(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantType  errors.ErrorType
	}{
		{
			name: "valid workbook",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "tokopedia.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("PK"), 0644))
				return path
			},
		},
		{
			name: "upper case extension",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "SALES.XLSX")
				require.NoError(t, os.WriteFile(path, []byte("PK"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.xlsx")
			},
			wantType: errors.ErrTypeNotFound,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantType: errors.ErrTypeNotFound,
		},
		{
			name: "csv file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "sales.csv")
				require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))
				return path
			},
			wantType: errors.ErrTypeValidation,
		},
		{
			name: "excel lock file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "~$sales.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("lock"), 0644))
				return path
			},
			wantType: errors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupFunc(t)
			err := NewFileValidator(nil).ValidateWorkbook(path)

			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType))
			assert.Contains(t, err.Error(), "→")
		})
	}
}

func TestFileValidator_ValidateFile_NamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xlsx")
	err := NewFileValidator(nil).ValidateFile(path)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), path)
}
