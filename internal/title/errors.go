package title

import (
	"fmt"

	"github.com/steven-cutting/decree/internal/apperr"
)

// Error is the domain error raised by title operations. Its message is meant
// to be shown to users verbatim; Kind is one of the apperr sentinels.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func dirInvalid(format string, args ...any) *Error {
	return newError(apperr.ErrDirectoryInvalid, format, args...)
}

func targetNotFound(format string, args ...any) *Error {
	return newError(apperr.ErrTargetNotFound, format, args...)
}

func targetUnsafe(format string, args ...any) *Error {
	return newError(apperr.ErrTargetUnsafe, format, args...)
}

func renameConflict(format string, args ...any) *Error {
	return newError(apperr.ErrRenameConflict, format, args...)
}

func configMalformed(cause error, format string, args ...any) *Error {
	e := newError(apperr.ErrConfigMalformed, format, args...)
	e.Err = cause
	return e
}
