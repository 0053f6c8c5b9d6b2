// FILE: embedconf/errors.go
package embedconf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the resolution pipeline. Errors returned by this
// package wrap one of these, so callers can classify failures with
// errors.Is while still getting a message naming the file, byte offset,
// or field involved.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrLocationNotConfigured indicates neither the override environment
	// variable nor a manifest-declared path is available.
	ErrLocationNotConfigured = errors.New("config location not configured")

	// ErrInvalidLocationValue indicates the manifest declares the config
	// path with a non-string value.
	ErrInvalidLocationValue = errors.New("config path in manifest is not a string")

	// ErrInvalidEncoding indicates the config file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("config file is not valid UTF-8")

	// ErrParse indicates the config file could not be parsed.
	ErrParse = errors.New("config parse failed")

	// ErrMissingField indicates a dotted field path did not resolve to a
	// value in the document.
	ErrMissingField = errors.New("field not found")

	// ErrUnsupportedType indicates a resolved value cannot be represented
	// as the requested scalar type.
	ErrUnsupportedType = errors.New("unsupported value type")
)

// MissingFieldError reports a dotted field path that could not be resolved.
// Path is always the full path as requested by the caller, not the segment
// that failed.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config does not contain a field matching %q", e.Path)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
