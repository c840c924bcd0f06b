package output

import (
	"errors"

	"github.com/steven-cutting/decree/internal/apperr"
)

// Exit codes, aligned with sysexits(3):
// 0  = Success
// 1  = Domain error (unsafe target, rename conflict)
// 2  = Usage error (bad arguments)
// 66 = Input missing (directory or target not found)
// 69 = Unavailable (I/O failure)
// 78 = Configuration error
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitInputMissing = 66
	ExitUnavailable  = 69
	ExitConfigError  = 78
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for bad invocations (exit code 2).
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsageError,
		Message: message,
	}
}

// NewConfigError creates an error for unusable configuration (exit code 78).
func NewConfigError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConfigError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error. Domain error kinds map
// to their sysexits code; anything unrecognised is an I/O failure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, apperr.ErrConfigMalformed):
		return ExitConfigError
	case errors.Is(err, apperr.ErrDirectoryInvalid), errors.Is(err, apperr.ErrTargetNotFound):
		return ExitInputMissing
	case errors.Is(err, apperr.ErrTargetUnsafe), errors.Is(err, apperr.ErrRenameConflict):
		return ExitGeneralError
	}
	return ExitUnavailable
}
