package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements the storage interface with hand-written SQL against
// PostgreSQL. Like the raw SQLite backend it does not create its schema
// at open; tables are managed through CreateTables/DropTables.
type Store struct {
	pool *pgxpool.Pool
}

// Open parses the connection URL, builds a pool, and verifies the
// connection.
func Open(ctx context.Context, url string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// TablesExist reports whether both board tables are present in the
// current schema.
func (s *Store) TablesExist(ctx context.Context) (bool, error) {
	var tableCount int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name IN ('categories', 'tasks')`).
		Scan(&tableCount)
	if err != nil {
		return false, fmt.Errorf("checking tables: %w", err)
	}
	return tableCount == 2, nil
}

// CreateTables provisions the schema. Repeated calls are a no-op.
func (s *Store) CreateTables(ctx context.Context) error {
	if err := s.execAll(ctx, createStatements); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// DropTables removes the schema and all data. Repeated calls are a no-op.
func (s *Store) DropTables(ctx context.Context) error {
	if err := s.execAll(ctx, dropStatements); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	return nil
}

// execAll runs the statements one at a time inside a transaction; the
// extended query protocol rejects multi-statement strings.
func (s *Store) execAll(ctx context.Context, statements []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
