package cli

import (
	"context"
	"fmt"

	"taskboard/internal/config"
	"taskboard/internal/storage"
	"taskboard/internal/storage/gormstore"
	"taskboard/internal/storage/pgstore"
	"taskboard/internal/storage/sqlstore"
)

// openStore builds the storage backend the configuration asks for.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendGORM:
		return gormstore.Open(gormstore.Options{
			Driver:     cfg.Driver,
			DSN:        cfg.DSN,
			LogQueries: cfg.LogQueries,
		})
	case config.BackendSQL:
		switch cfg.Driver {
		case config.DriverSQLite:
			return sqlstore.Open(cfg.DSN)
		case config.DriverPostgres:
			return pgstore.Open(ctx, cfg.DSN)
		}
	}
	return nil, fmt.Errorf("unsupported backend/driver combination %q/%q", cfg.Backend, cfg.Driver)
}
