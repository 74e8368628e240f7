package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitFailure},
		{"missing input", NewFileNotFoundError("/tmp/sales.xlsx"), ExitNotFound},
		{"wrapped missing input", fmt.Errorf("load: %w", NewFileNotFoundError("/tmp/sales.xlsx")), ExitNotFound},
		{"parsing", NewParsingError("bad workbook", nil), ExitParsing},
		{"storage", NewStorageError("disk full", nil), ExitStorage},
		{"render", NewRenderError("bad chart", nil), ExitRender},
		{"config", NewConfigError("bad path", nil), ExitConfig},
		{"validation", NewValidationError("not a workbook"), ExitValidation},
		{"cancelled", fmt.Errorf("run: %w", context.Canceled), ExitCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
