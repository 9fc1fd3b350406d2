package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/evcraddock/rent-finder/internal/catalog"
	"github.com/evcraddock/rent-finder/internal/config"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/logging"
	"github.com/evcraddock/rent-finder/internal/property"
	"github.com/evcraddock/rent-finder/internal/upload"
	"github.com/evcraddock/rent-finder/internal/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the HTTP JSON API. Settings come from RF_* environment variables and ./.env; --port and --db override them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: RF_PORT or 8080)")

	return cmd
}

func runServe(ctx context.Context, port int) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port != 0 {
		cfg.Port = strconv.Itoa(port)
	}

	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeDB(database)

	store, err := newStore(database, cfg.PersistCatalog)
	if err != nil {
		return err
	}

	publisher := listing.NewPublisher(upload.New(cfg.Upload), store)

	srv, err := web.NewServer(web.Options{
		DB:            database,
		Store:         store,
		Publisher:     publisher,
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: !cfg.DevMode,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	jobs, err := scheduleSessionCleanup(cfg.SessionCleanup, srv)
	if err != nil {
		return err
	}
	jobs.Start()
	defer jobs.Stop()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", httpServer.Addr, "persist_catalog", cfg.PersistCatalog, "dev", cfg.DevMode)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", httpServer.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newStore builds the catalog from the seed listings, replaying the journal
// in database when persist is set.
func newStore(database *sql.DB, persist bool) (*catalog.Store, error) {
	if !persist {
		return catalog.NewStore(property.Seed()), nil
	}

	store, err := catalog.Restore(property.Seed(), property.NewRepository(database))
	if err != nil {
		return nil, fmt.Errorf("restoring catalog: %w", err)
	}
	return store, nil
}

// scheduleSessionCleanup registers the expired-session sweep. The returned
// scheduler has not been started.
func scheduleSessionCleanup(spec string, srv *web.Server) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := srv.Sessions().Cleanup()
		if err != nil {
			slog.Error("cleaning up sessions", "error", err)
			return
		}
		if n > 0 {
			slog.Info("expired sessions removed", "count", n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduling session cleanup %q: %w", spec, err)
	}
	return c, nil
}
