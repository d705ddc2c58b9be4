package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store implements the storage interface with hand-written SQL against a
// local SQLite database. Unlike the ORM backend it does not migrate at
// open: the schema is managed explicitly through CreateTables/DropTables,
// so the tables may legitimately be absent while the server runs.
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) a SQLite database at path and enables WAL mode.
// Foreign-key enforcement is requested through the DSN so every pooled
// connection gets it; ON DELETE SET NULL on tasks depends on it.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "taskboard.db"
	}

	db, err := sqlx.Open("sqlite", storeDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	return &Store{db: db}, nil
}

// storeDSN appends the driver options every connection needs: foreign
// keys on, and timestamps written in SQLite's own format so ORDER BY
// created_at sorts chronologically.
func storeDSN(path string) string {
	params := []string{}
	if !strings.Contains(path, "_pragma=foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(path, "_time_format=") {
		params = append(params, "_time_format=sqlite")
	}
	if len(params) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// TablesExist reports whether both board tables are present.
func (s *Store) TablesExist(ctx context.Context) (bool, error) {
	var tableCount int
	err := s.db.GetContext(ctx, &tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('categories', 'tasks')")
	if err != nil {
		return false, fmt.Errorf("checking tables: %w", err)
	}
	return tableCount == 2, nil
}

// CreateTables provisions the schema. Repeated calls are a no-op.
func (s *Store) CreateTables(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// DropTables removes the schema and all data. Repeated calls are a no-op.
func (s *Store) DropTables(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dropSQL); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	return nil
}
