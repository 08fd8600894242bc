// Package corpus persists page text so excerpt search has a durable
// document set to run against. The engine itself stays pure; only the CLI
// layer touches this store.
package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrLocked reports that another process holds the corpus write lock.
var ErrLocked = errors.New("corpus: database is locked by another process")

// ErrNotFound reports a document ID with no row.
var ErrNotFound = errors.New("corpus: document not found")

// Store manages corpus persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Document describes one stored document.
type Document struct {
	ID        string
	Name      string
	PageCount int
	CreatedAt time.Time
}

// Open initializes or connects to the corpus database at path, taking an
// advisory file lock against concurrent writers and applying migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure corpus directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire corpus lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			number INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (document_id, number)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}

// Close releases the database connection and the advisory lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// AddDocument stores a named document with its pages and returns its record.
func (s *Store) AddDocument(ctx context.Context, name string, pages []string) (*Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	doc := Document{
		ID:        uuid.NewString(),
		Name:      name,
		PageCount: len(pages),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (id, name, created_at) VALUES (?, ?, ?)`,
		doc.ID, doc.Name, doc.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	for i, text := range pages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pages (document_id, number, text) VALUES (?, ?, ?)`,
			doc.ID, i+1, text,
		); err != nil {
			return nil, fmt.Errorf("insert page %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &doc, nil
}

// Documents lists stored documents in insertion order.
func (s *Store) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.created_at, COUNT(p.number)
		FROM documents d
		LEFT JOIN pages p ON p.document_id = d.id
		GROUP BY d.id
		ORDER BY d.created_at`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		var created string
		if err := rows.Scan(&doc.ID, &doc.Name, &created, &doc.PageCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			doc.CreatedAt = ts
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Pages returns a document's page texts in page order.
func (s *Store) Pages(ctx context.Context, documentID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM pages WHERE document_id = ? ORDER BY number`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		out = append(out, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM documents WHERE id = ?`, documentID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check document: %w", err)
		}
		if exists == 0 {
			return nil, ErrNotFound
		}
	}
	return out, nil
}

// Remove deletes a document and its pages.
func (s *Store) Remove(ctx context.Context, documentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, documentID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
