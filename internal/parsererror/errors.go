// Package parsererror defines the typed errors surfaced by the statement
// parsing and transformation pipeline.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// FormatError represents a statement whose transaction header could not be
// located. No partial output is produced when this error is returned.
type FormatError struct {
	FilePath string
	Msg      string
}

func (e *FormatError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("invalid statement format in '%s': %s", e.FilePath, e.Msg)
	}
	return fmt.Sprintf("invalid statement format: %s", e.Msg)
}

// SchemaError represents a statement whose columns could not be mapped to the
// canonical schema after alias resolution. It carries both the canonical names
// that are missing and the columns that were actually present, to aid diagnosis.
type SchemaError struct {
	Missing []string
	Present []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required columns missing after alias resolution: %s (columns present: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Present, ", "))
}

// DecodeError represents raw statement bytes that none of the attempted text
// encodings could decode.
type DecodeError struct {
	Attempted []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode statement text, attempted encodings: %s",
		strings.Join(e.Attempted, ", "))
}

// StoreError represents a failure in the account-mapping store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("account store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Hint returns a user-facing hint for a pipeline error, or "" when no hint
// applies. Commands print it alongside the error message.
func Hint(err error) string {
	var formatErr *FormatError
	var schemaErr *SchemaError
	var decodeErr *DecodeError
	switch {
	case errors.As(err, &formatErr):
		return "the file doesn't appear to be a BAC statement export"
	case errors.As(err, &schemaErr):
		return "the statement columns don't match any known BAC layout"
	case errors.As(err, &decodeErr):
		return "the file could not be decoded with any supported text encoding"
	default:
		return ""
	}
}
