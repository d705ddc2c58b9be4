package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/storage"
)

func newDBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the schema of a raw-SQL backend",
		Long: "The gorm backend migrates its schema when it opens; these commands\n" +
			"apply to the sql backend, which provisions tables explicitly.",
	}
	cmd.AddCommand(newDBStatusCmd(app))
	cmd.AddCommand(newDBCreateCmd(app))
	cmd.AddCommand(newDBDropCmd(app))
	return cmd
}

func newDBStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvisioner(cmd.Context(), app, func(ctx context.Context, prov storage.Provisioner) error {
				exists, err := prov.TablesExist(ctx)
				if err != nil {
					return err
				}
				if exists {
					fmt.Fprintln(cmd.OutOrStdout(), "tables present")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "tables absent")
				}
				return nil
			})
		},
	}
}

func newDBCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the tables (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvisioner(cmd.Context(), app, func(ctx context.Context, prov storage.Provisioner) error {
				if err := prov.CreateTables(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "tables created")
				return nil
			})
		},
	}
}

func newDBDropCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Drop the tables and all data (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvisioner(cmd.Context(), app, func(ctx context.Context, prov storage.Provisioner) error {
				if err := prov.DropTables(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "tables dropped")
				return nil
			})
		},
	}
}

func withProvisioner(ctx context.Context, app *App, fn func(context.Context, storage.Provisioner) error) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	// Checked before opening: the gorm backend would otherwise create and
	// migrate a database just to report it has no provisioner.
	if cfg.Database.Backend != config.BackendSQL {
		return fmt.Errorf("backend %q manages its schema automatically; db commands need --backend sql", cfg.Database.Backend)
	}

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer store.Close()

	prov, ok := store.(storage.Provisioner)
	if !ok {
		return fmt.Errorf("backend %q has no schema provisioner", cfg.Database.Backend)
	}
	return fn(ctx, prov)
}
