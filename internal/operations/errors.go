package operations

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
)

// ErrorType represents the type of operation error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeExecution    ErrorType = "execution"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeCancellation ErrorType = "cancellation"
)

// OperationError is a stage failure of a report run
type OperationError struct {
	Type    ErrorType `json:"type"`
	Step    string    `json:"step,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e == nil {
		return "unknown operation error"
	}
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	if e.Step != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(step, message string, cause error) *OperationError {
	return &OperationError{
		Type:    ErrorTypeValidation,
		Step:    step,
		Message: message,
		Cause:   cause,
	}
}

// NewExecutionError creates a new execution error
func NewExecutionError(step string, cause error) *OperationError {
	return &OperationError{
		Type:    ErrorTypeExecution,
		Step:    step,
		Message: "step execution failed",
		Cause:   cause,
	}
}

// WrapError attaches the failing step to err, classifying it by its cause
func WrapError(step string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if stderrors.As(err, &opErr) {
		return err
	}

	switch {
	case errors.IsNotFound(err):
		return &OperationError{Type: ErrorTypeNotFound, Step: step, Message: "input is missing", Cause: err}
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return &OperationError{Type: ErrorTypeCancellation, Step: step, Message: "run was cancelled", Cause: err}
	default:
		return NewExecutionError(step, err)
	}
}

// GetErrorType returns the type of the error
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ""
	}
	var opErr *OperationError
	if stderrors.As(err, &opErr) {
		return opErr.Type
	}
	return ErrorTypeExecution
}
