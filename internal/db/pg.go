package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/baharkarakas/trade-ledger/internal/config"
	"github.com/baharkarakas/trade-ledger/internal/metrics"
)

// Provider hands out one connection per operation call and takes it back
// when the call is done. Connections come from a managed pool.
type Provider struct {
	db *sqlx.DB
}

func NewProvider(cfg config.DBConfig) (*Provider, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	sqlDB := stdlib.OpenDB(*connCfg)
	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return &Provider{db: sqlx.NewDb(sqlDB, "pgx")}, nil
}

// NewProviderFromDB wraps an already opened handle.
func NewProviderFromDB(db *sqlx.DB) *Provider {
	return &Provider{db: db}
}

func (p *Provider) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		metrics.ConnectionErrors.Inc()
		return nil, &ConnectionError{Err: err}
	}
	metrics.ConnectionsInUse.Inc()
	return conn, nil
}

// Release always closes conn, whatever state the call left it in.
func (p *Provider) Release(conn *sqlx.Conn) {
	if conn == nil {
		return
	}
	metrics.ConnectionsInUse.Dec()
	if err := conn.Close(); err != nil {
		slog.Warn("db release", "err", err)
	}
}

// Ping verifies the store is reachable within a short deadline.
func (p *Provider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.db.PingContext(ctx); err != nil {
		return &ConnectionError{Err: err}
	}
	return nil
}

func (p *Provider) DB() *sqlx.DB { return p.db }

func (p *Provider) Close() error { return p.db.Close() }
