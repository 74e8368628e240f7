package errors

import (
	"context"
	"errors"
)

// Process exit codes reported by the command
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitConfig     = 2
	ExitNotFound   = 3
	ExitParsing    = 4
	ExitStorage    = 5
	ExitRender     = 6
	ExitValidation = 7
	ExitCancelled  = 130
)

var exitCodes = map[ErrorType]int{
	ErrTypeConfig:     ExitConfig,
	ErrTypeNotFound:   ExitNotFound,
	ErrTypeParsing:    ExitParsing,
	ErrTypeStorage:    ExitStorage,
	ErrTypeRender:     ExitRender,
	ErrTypeValidation: ExitValidation,
}

// ExitCode maps err to the process exit code. The outermost AppError in
// the chain decides; anything else is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if code, ok := exitCodes[appErr.Type]; ok {
			return code
		}
	}
	return ExitFailure
}
