// Package store persists the account-number to friendly-name mappings used
// when rewriting transfer references. Two independent mapping schemes exist:
// one for internal (BAC-to-BAC) transfers and one for interbank (SINPE)
// transfers. The store is SQLite-backed and assumed single-writer per
// process; last write wins on a given account key.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"dmadriz/bac-csv/internal/parsererror"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Scheme selects one of the two independent mapping tables.
type Scheme string

const (
	// SchemeInternal maps accounts referenced by TEF internal transfers.
	SchemeInternal Scheme = "tef"
	// SchemeInterbank maps accounts referenced by SINPE interbank transfers.
	SchemeInterbank Scheme = "sinpe"
)

// table returns the backing table name for a scheme.
func (s Scheme) table() (string, error) {
	switch s {
	case SchemeInternal:
		return "account_mapping", nil
	case SchemeInterbank:
		return "sinpe_account_mapping", nil
	default:
		return "", fmt.Errorf("unknown mapping scheme: %s", s)
	}
}

// Valid reports whether the scheme is one of the two known schemes.
func (s Scheme) Valid() bool {
	_, err := s.table()
	return err == nil
}

// Store manages the SQLite mapping database.
type Store struct {
	db     *sql.DB
	dbPath string
}

const schema = `
CREATE TABLE IF NOT EXISTS account_mapping (
	account_number TEXT PRIMARY KEY,
	friendly_name  TEXT NOT NULL,
	created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	last_used      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS sinpe_account_mapping (
	account_number TEXT PRIMARY KEY,
	friendly_name  TEXT NOT NULL,
	created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	last_used      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Open opens the mapping database at dbPath, creating the file, its parent
// directory and the schema if needed. Opening is an explicit startup step;
// the returned handle is passed to whatever needs mappings.
func Open(dbPath string) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Mappings returns every account-number to friendly-name mapping for a
// scheme, most recently used first in iteration source order. The result is
// a transient snapshot; the store remains the owner of the data.
func (s *Store) Mappings(scheme Scheme) (map[string]string, error) {
	table, err := scheme.table()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT account_number, friendly_name FROM %s ORDER BY last_used DESC", table))
	if err != nil {
		return nil, &parsererror.StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	mappings := make(map[string]string)
	for rows.Next() {
		var account, name string
		if err := rows.Scan(&account, &name); err != nil {
			return nil, &parsererror.StoreError{Op: "list", Err: err}
		}
		mappings[account] = name
	}
	if err := rows.Err(); err != nil {
		return nil, &parsererror.StoreError{Op: "list", Err: err}
	}
	return mappings, nil
}

// Put adds or updates a mapping. An existing mapping for the same account is
// replaced and its last_used timestamp refreshed.
func (s *Store) Put(scheme Scheme, account, friendlyName string) error {
	table, err := scheme.table()
	if err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (account_number, friendly_name, last_used)
		VALUES (?, ?, CURRENT_TIMESTAMP)`, table), account, friendlyName)
	if err != nil {
		return &parsererror.StoreError{Op: "put", Err: err}
	}
	return nil
}

// Delete removes a mapping. Deleting an unknown account is not an error.
func (s *Store) Delete(scheme Scheme, account string) error {
	table, err := scheme.table()
	if err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf(
		"DELETE FROM %s WHERE account_number = ?", table), account)
	if err != nil {
		return &parsererror.StoreError{Op: "delete", Err: err}
	}
	return nil
}

// Touch refreshes the last_used timestamp of the given accounts. Called after
// a conversion run for every mapping that matched, so listings surface the
// mappings that are actually in use.
func (s *Store) Touch(scheme Scheme, accounts ...string) error {
	if len(accounts) == 0 {
		return nil
	}
	table, err := scheme.table()
	if err != nil {
		return err
	}

	stmt, err := s.db.Prepare(fmt.Sprintf(
		"UPDATE %s SET last_used = CURRENT_TIMESTAMP WHERE account_number = ?", table))
	if err != nil {
		return &parsererror.StoreError{Op: "touch", Err: err}
	}
	defer stmt.Close()

	for _, account := range accounts {
		if _, err := stmt.Exec(account); err != nil {
			return &parsererror.StoreError{Op: "touch", Err: err}
		}
	}
	return nil
}
