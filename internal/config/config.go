package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Backend and driver names accepted in configuration.
const (
	BackendGORM = "gorm"
	BackendSQL  = "sql"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultConfigPath is tried when no --config flag is given; a missing
// file there just means defaults.
const DefaultConfigPath = "taskboard.yaml"

// Config keeps runtime settings for the server.
type Config struct {
	ListenAddr string         `mapstructure:"listen_addr" yaml:"listen_addr"`
	Database   DatabaseConfig `mapstructure:"database" yaml:"database"`
}

// DatabaseConfig selects and parameterizes one of the storage backends.
type DatabaseConfig struct {
	// Backend picks the implementation: "gorm" migrates its schema at
	// open, "sql" is hand-written SQL with explicit table provisioning.
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Driver picks the database: "sqlite" or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`
	// DSN is a file path for sqlite or a connection URL for postgres.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// LogQueries turns on statement logging where the backend supports it.
	LogQueries bool `mapstructure:"log_queries" yaml:"log_queries"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr: "127.0.0.1:3000",
		Database: DatabaseConfig{
			Backend: BackendGORM,
			Driver:  DriverSQLite,
			DSN:     "taskboard.db",
		},
	}
}

// Load reads configuration from the YAML file at path (missing files fall
// back to defaults) with TASKBOARD_* environment variables layered on top.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("listen_addr", "127.0.0.1:3000")
	v.SetDefault("database.backend", BackendGORM)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "taskboard.db")
	v.SetDefault("database.log_queries", false)

	// TASKBOARD_LISTEN_ADDR, TASKBOARD_DATABASE_DSN, and so on.
	v.SetEnvPrefix("taskboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus environment still apply.
		if !isMissingFile(err) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func isMissingFile(err error) bool {
	if _, ok := err.(*os.PathError); ok {
		return true
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return false
}

// Validate checks the fields that have a closed set of accepted values.
// Callers that override fields after Load should validate again.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen_addr is required")
	}
	switch c.Database.Backend {
	case BackendGORM, BackendSQL:
	default:
		return fmt.Errorf("unknown database backend %q (expected %s or %s)",
			c.Database.Backend, BackendGORM, BackendSQL)
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q (expected %s or %s)",
			c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}
