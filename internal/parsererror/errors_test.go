package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	err := &FormatError{Msg: "no transaction header located"}
	assert.Contains(t, err.Error(), "no transaction header located")

	withPath := &FormatError{FilePath: "estado.csv", Msg: "no transaction header located"}
	assert.Contains(t, withPath.Error(), "estado.csv")
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{
		Missing: []string{"Date", "Merchant"},
		Present: []string{"Algo", "Otra cosa"},
	}
	assert.Contains(t, err.Error(), "Date, Merchant")
	assert.Contains(t, err.Error(), "Algo, Otra cosa")
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Attempted: []string{"windows-1252", "utf-8"}}
	assert.Contains(t, err.Error(), "windows-1252, utf-8")
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &StoreError{Op: "put", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "put")
}

func TestHint(t *testing.T) {
	wrapped := fmt.Errorf("error parsing statement: %w", &FormatError{Msg: "no transaction header located"})
	assert.Contains(t, Hint(wrapped), "BAC statement export")

	assert.Contains(t, Hint(&SchemaError{}), "columns")
	assert.Contains(t, Hint(&DecodeError{}), "encoding")
	assert.Equal(t, "", Hint(errors.New("something else")))
}
