package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{"not found error type", ErrTypeNotFound, "NOT_FOUND"},
		{"parsing error type", ErrTypeParsing, "PARSING"},
		{"storage error type", ErrTypeStorage, "STORAGE"},
		{"validation error type", ErrTypeValidation, "VALIDATION"},
		{"config error type", ErrTypeConfig, "CONFIG"},
		{"render error type", ErrTypeRender, "RENDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeParsing,
				Message: "failed to read sheet",
			},
			wantMessage: "[PARSING] failed to read sheet",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "failed to write report",
				Cause:   fmt.Errorf("disk full"),
			},
			wantMessage: "[STORAGE] failed to write report: disk full",
		},
		{
			name: "error with hint",
			appError: &AppError{
				Type:    ErrTypeNotFound,
				Message: "file not found: sales.xlsx",
				Hint:    "check the path",
			},
			wantMessage: "[NOT_FOUND] file not found: sales.xlsx\n→ check the path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewParsingError("failed to open workbook", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewFileNotFoundError("sales.xlsx").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewStorageError("write failed", nil).
		WithContext("path", "index.html").
		WithContext("bytes", 42)

	assert.Equal(t, "index.html", err.Context["path"])
	assert.Equal(t, 42, err.Context["bytes"])

	bare := &AppError{Type: ErrTypeRender}
	bare.WithContext("chart", "trend")
	assert.Equal(t, "trend", bare.Context["chart"])
}

func TestNewFileNotFoundError(t *testing.T) {
	err := NewFileNotFoundError("/data/tokopedia.xlsx")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Contains(t, err.Error(), "/data/tokopedia.xlsx")
	assert.NotEmpty(t, err.Hint)
	assert.Equal(t, "/data/tokopedia.xlsx", err.Context["path"])
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("load stage: %w", NewFileNotFoundError("x.xlsx"))

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, IsType(wrapped, ErrTypeNotFound))
	assert.False(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "x.xlsx", appErr.Context["path"])
}

func TestHelperConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"not found", NewFileNotFoundError("sales.xlsx"), ErrTypeNotFound},
		{"parsing", NewParsingError("bad", cause), ErrTypeParsing},
		{"storage", NewStorageError("bad", cause), ErrTypeStorage},
		{"validation", NewValidationError("bad"), ErrTypeValidation},
		{"config", NewConfigError("bad", cause), ErrTypeConfig},
		{"render", NewRenderError("bad", cause), ErrTypeRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.NotNil(t, tt.err.Context)
		})
	}
}
