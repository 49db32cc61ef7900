// Package storage implements the durable store: CRUD and read-side
// aggregation over categories, transactions and budgets in a local SQLite
// file. Every operation is a single statement; there are no transactions
// spanning multiple tables.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"budgetplanner/internal/core"
	"budgetplanner/internal/log"

	_ "modernc.org/sqlite"
)

// Store owns the database handle. One Store is created at startup and passed
// down; it is never reassigned.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite file at dbPath, applies the
// embedded migrations and seeds the default categories. It is idempotent:
// reopening an initialized database is not an error and leaves existing rows
// untouched.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Single interactive user, single writer. One connection keeps SQLite
	// from ever seeing concurrent writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db}

	if err := s.EnsureSeedCategories(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// EnsureSeedCategories inserts the default category set with insert-if-absent
// semantics. Rows whose name already exists are left untouched, so the seed
// can run on every startup.
func (s *Store) EnsureSeedCategories(ctx context.Context) error {
	for _, c := range core.DefaultCategories {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (name, type, icon) VALUES (?, ?, ?)`,
			c.Name, string(c.Type), c.Icon)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	logger(ctx).DebugContext(ctx, "Default categories ensured", log.FieldCount, len(core.DefaultCategories))
	return nil
}

// ClearAllData deletes all transactions and budgets. Categories are
// preserved. Irreversible; confirmation belongs to the caller.
func (s *Store) ClearAllData(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets`); err != nil {
		return fmt.Errorf("clear budgets: %w", err)
	}
	logger(ctx).InfoContext(ctx, "All transactions and budgets cleared")
	return nil
}

// logger pulls the request-scoped logger when one is present, tagged for this
// package.
func logger(ctx context.Context) *log.Logger {
	return log.FromContext(ctx).WithComponent(log.ComponentStorage)
}
