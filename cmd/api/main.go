package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/trade-ledger/internal/api"
	"github.com/baharkarakas/trade-ledger/internal/config"
	"github.com/baharkarakas/trade-ledger/internal/db"
	"github.com/baharkarakas/trade-ledger/internal/graph"
	"github.com/baharkarakas/trade-ledger/internal/logger"
	"github.com/baharkarakas/trade-ledger/internal/metrics"
	"github.com/baharkarakas/trade-ledger/internal/repository/postgres"
	"github.com/baharkarakas/trade-ledger/internal/services"
)

var version = "dev"

func main() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the GraphQL API",
		RunE:  serve,
	}

	rootCmd := &cobra.Command{
		Use:          "trade-ledger",
		Short:        "GraphQL API over the stock-trade transactions table",
		RunE:         serve,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the users and transactions tables if they are missing",
		RunE:  migrate,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("trade-ledger %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (config.Config, *db.Provider, error) {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogFile)
	slog.SetDefault(log)

	provider, err := db.NewProvider(cfg.DB)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, provider, nil
}

func migrate(cmd *cobra.Command, args []string) error {
	_, provider, err := setup()
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	if err := db.RunMigrations(ctx, provider.DB()); err != nil {
		slog.Error("migrations", "err", err)
		return err
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, provider, err := setup()
	if err != nil {
		slog.Error("db config", "err", err)
		return err
	}
	defer provider.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The pool dials lazily; a failed ping is reported but not fatal since
	// every operation acquires its own connection anyway.
	if err := provider.Ping(ctx); err != nil {
		slog.Warn("db ping", "err", err)
	}

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, provider.DB()); err != nil {
			slog.Error("migrations", "err", err)
			return err
		}
	}

	repos := postgres.NewRepositories()
	txnSvc := services.NewTransactionService(provider, repos.Transactions, cfg.QueryTimeout)

	schema, err := graph.NewSchema(txnSvc)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	metrics.Init()
	r := api.NewRouter(cfg, schema)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "db_host", cfg.DB.Host, "db_name", cfg.DB.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("server", "err", err)
		return err
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
