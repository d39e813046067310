package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLatin1(t *testing.T) {
	// "Fecha de Transacción" with ó encoded as latin-1/cp1252 0xF3
	raw := []byte("Fecha de Transacci\xf3n,Descripci\xf3n")

	text, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Fecha de Transacción,Descripción", text)
}

func TestDecodeASCII(t *testing.T) {
	raw := []byte("Fecha de Transaccion,Descripcion")

	text, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Fecha de Transaccion,Descripcion", text)
}

func TestDecodeUTF8BecomesMojibake(t *testing.T) {
	// A UTF-8 export decodes cleanly under cp1252 first, producing the
	// mojibake spellings the column alias table tolerates.
	raw := []byte("Fecha de Transacción")

	text, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, strings.Contains(text, "TransacciÃ³n") || text == "Fecha de Transacción")
}

func TestDecodeEmptyInput(t *testing.T) {
	text, err := Decode([]byte{})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
