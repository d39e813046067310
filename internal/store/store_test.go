package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bac_accounts.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestPutAndMappings(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(SchemeInternal, "12345", "Mom"))
	require.NoError(t, s.Put(SchemeInternal, "67890", "Landlord"))

	mappings, err := s.Mappings(SchemeInternal)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"12345": "Mom",
		"67890": "Landlord",
	}, mappings)
}

func TestPutReplacesExisting(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(SchemeInternal, "12345", "Mom"))
	require.NoError(t, s.Put(SchemeInternal, "12345", "Mother"))

	mappings, err := s.Mappings(SchemeInternal)
	require.NoError(t, err)
	assert.Equal(t, "Mother", mappings["12345"])
	assert.Len(t, mappings, 1)
}

func TestSchemesAreIndependent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(SchemeInternal, "12345", "Mom"))
	require.NoError(t, s.Put(SchemeInterbank, "98765", "John"))

	internal, err := s.Mappings(SchemeInternal)
	require.NoError(t, err)
	interbank, err := s.Mappings(SchemeInterbank)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"12345": "Mom"}, internal)
	assert.Equal(t, map[string]string{"98765": "John"}, interbank)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(SchemeInterbank, "98765", "John"))
	require.NoError(t, s.Delete(SchemeInterbank, "98765"))

	mappings, err := s.Mappings(SchemeInterbank)
	require.NoError(t, err)
	assert.Empty(t, mappings)

	// Deleting an unknown account is not an error
	assert.NoError(t, s.Delete(SchemeInterbank, "00000"))
}

func TestTouch(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(SchemeInternal, "12345", "Mom"))
	assert.NoError(t, s.Touch(SchemeInternal, "12345"))
	assert.NoError(t, s.Touch(SchemeInternal))

	// Touching an unknown account is not an error
	assert.NoError(t, s.Touch(SchemeInternal, "00000"))
}

func TestUnknownScheme(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Mappings(Scheme("bogus"))
	assert.Error(t, err)
	assert.Error(t, s.Put(Scheme("bogus"), "1", "x"))
	assert.False(t, Scheme("bogus").Valid())
	assert.True(t, SchemeInternal.Valid())
	assert.True(t, SchemeInterbank.Valid())
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "bac_accounts.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, s.Close())
	}()
	assert.Equal(t, dbPath, s.Path())
}
