package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/service"
	"taskboard/internal/storage"
	"taskboard/internal/web"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app)
		},
	}
}

func runServe(cmd *cobra.Command, app *App) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	categorySvc := service.NewCategoryService(store)
	taskSvc := service.NewTaskService(store)

	// The setup endpoints only exist on backends that opt in.
	provisioner, _ := store.(storage.Provisioner)

	srv, err := web.NewServer(web.ServerConfig{
		Categories:  categorySvc,
		Tasks:       taskSvc,
		Store:       store,
		Provisioner: provisioner,
	})
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("[info] taskboard listening on http://%s (backend=%s driver=%s)",
		cfg.ListenAddr, cfg.Database.Backend, cfg.Database.Driver)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	log.Println("Shutdown complete.")
	return nil
}
