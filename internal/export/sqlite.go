// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     export
// Description: SQLite export of flattened documents
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	"github.com/felpofo/kfg/foundation/kfg/ast"
)

// Row is one stored leaf of a document
type Row struct {
	Source string
	Path   string
	Kind   string
	Value  string
}

// SQLiteStore writes documents to an entries table, one row per leaf
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenSQLite opens or creates the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, sqliteError(err, "failed to create directory", path)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, sqliteError(err, "failed to open database", path)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, sqliteError(err, "failed to initialize schema", path)
	}
	return store, nil
}

func sqliteError(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeKFGExport).
		WithOperation("export.sqlite").
		WithDetail("path", path)
}

// initSchema creates the entries table
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		source TEXT NOT NULL,
		path TEXT NOT NULL,
		kind TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (source, path)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save replaces all rows of source with the leaves of doc and returns the
// number of rows written
func (s *SQLiteStore) Save(ctx context.Context, source string, doc *ast.Document) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE source = ?`, source); err != nil {
		return 0, fmt.Errorf("failed to clear previous entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (source, path, kind, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, e := range ast.Flatten(doc.Root) {
		value := ast.Formatter{}.Inline(e.Node)
		if str, ok := e.Node.(ast.String); ok {
			value = string(str)
		}
		if _, err := stmt.ExecContext(ctx, source, e.Path, e.Node.Kind().String(), value); err != nil {
			return written, fmt.Errorf("failed to insert %s: %w", e.Path, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return written, nil
}

// Rows returns the stored rows of source ordered by path
func (s *SQLiteStore) Rows(ctx context.Context, source string) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, path, kind, value FROM entries
		WHERE source = ?
		ORDER BY path
	`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Source, &r.Path, &r.Kind, &r.Value); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ToSQLite saves doc under source in the database at path
func ToSQLite(ctx context.Context, path, source string, doc *ast.Document) (int, error) {
	store, err := OpenSQLite(path)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	n, err := store.Save(ctx, source, doc)
	if err != nil {
		return n, sqliteError(err, "failed to save document", path)
	}
	return n, nil
}
