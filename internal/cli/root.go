package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
)

// App carries the flag overrides shared by every command. Flags win over
// environment variables, which win over the config file.
type App struct {
	ConfigPath string
	Addr       string
	Backend    string
	Driver     string
	DSN        string
	LogQueries bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Task and category board served as plain HTML",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Serve with the default ORM-backed SQLite store
  taskboard serve

  # The raw-SQL backends manage their schema explicitly
  taskboard --backend sql --dsn board.db db create
  taskboard --backend sql --dsn board.db serve

  # PostgreSQL behind the raw-SQL backend
  taskboard --backend sql --driver postgres --dsn postgres://localhost/taskboard serve
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand starts the server.
			return runServe(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a YAML config file (default: taskboard.yaml if present)")
	cmd.PersistentFlags().StringVar(&app.Addr, "addr", "", "Bind address (overrides listen_addr)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend: gorm or sql")
	cmd.PersistentFlags().StringVar(&app.Driver, "driver", "", "Database driver: sqlite or postgres")
	cmd.PersistentFlags().StringVar(&app.DSN, "dsn", "", "Database file path or connection URL")
	cmd.PersistentFlags().BoolVar(&app.LogQueries, "log-queries", false, "Log SQL statements where the backend supports it")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newDBCmd(app))

	return cmd
}

// loadConfig resolves file and environment configuration, then lays the
// command-line flags on top.
func (a *App) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if a.Addr != "" {
		cfg.ListenAddr = a.Addr
	}
	if a.Backend != "" {
		cfg.Database.Backend = a.Backend
	}
	if a.Driver != "" {
		cfg.Database.Driver = a.Driver
	}
	if a.DSN != "" {
		cfg.Database.DSN = a.DSN
	}
	if a.LogQueries {
		cfg.Database.LogQueries = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
