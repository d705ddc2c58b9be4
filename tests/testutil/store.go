package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"taskboard/internal/storage/gormstore"
	"taskboard/internal/storage/sqlstore"
)

// NewSQLStore creates an in-memory raw-SQL store with the tables already
// provisioned. It automatically closes the store when the test completes.
func NewSQLStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	s, err := sqlstore.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	if err := s.CreateTables(context.Background()); err != nil {
		t.Fatalf("creating tables: %v", err)
	}

	return s
}

// NewBareSQLStore is NewSQLStore without the provisioning step, for tests
// that exercise the table lifecycle itself.
func NewBareSQLStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	s, err := sqlstore.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewGormStore creates an ORM-backed SQLite store in a throwaway
// directory, migrated and ready. It closes with the test.
func NewGormStore(t *testing.T) *gormstore.Store {
	t.Helper()

	s, err := gormstore.Open(gormstore.Options{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
