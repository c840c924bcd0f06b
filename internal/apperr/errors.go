// Package apperr defines the error kinds shared by the title engine and its callers.
package apperr

import "errors"

var (
	ErrDirectoryInvalid = errors.New("directory invalid")
	ErrTargetNotFound   = errors.New("target not found")
	ErrTargetUnsafe     = errors.New("target unsafe")
	ErrRenameConflict   = errors.New("rename conflict")
	ErrConfigMalformed  = errors.New("config malformed")
)
