package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/baharkarakas/trade-ledger/internal/metrics"
	"github.com/baharkarakas/trade-ledger/internal/models"
	repo "github.com/baharkarakas/trade-ledger/internal/repository"
)

// ConnProvider hands out a connection for the duration of one call.
type ConnProvider interface {
	Acquire(ctx context.Context) (*sqlx.Conn, error)
	Release(conn *sqlx.Conn)
}

type TransactionService struct {
	conns   ConnProvider
	trx     repo.Transactions
	timeout time.Duration
}

func NewTransactionService(conns ConnProvider, t repo.Transactions, timeout time.Duration) *TransactionService {
	return &TransactionService{conns: conns, trx: t, timeout: timeout}
}

// ----------------- Helpers -----------------

// withConn runs fn on a freshly acquired connection under the per-call
// deadline and releases the connection before returning. On error the
// partial result is dropped.
func withConn[T any](ctx context.Context, s *TransactionService, op string, fn func(context.Context, *sqlx.Conn) (T, error)) (T, error) {
	var zero T
	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	conn, err := s.conns.Acquire(ctx)
	if err != nil {
		return zero, s.fail(op, start, err)
	}
	defer s.conns.Release(conn)

	out, err := fn(ctx, conn)
	if err != nil {
		return zero, s.fail(op, start, err)
	}
	metrics.OperationsTotal.WithLabelValues(op, "ok").Inc()
	metrics.OperationLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	return out, nil
}

func (s *TransactionService) fail(op string, start time.Time, err error) error {
	metrics.OperationsTotal.WithLabelValues(op, "error").Inc()
	metrics.OperationLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	slog.Error("operation failed", "op", op, "err", err)
	return err
}

// ----------------- Queries -----------------

func (s *TransactionService) List(ctx context.Context, page models.Page) ([]models.TransactionRecord, error) {
	return withConn(ctx, s, "transactions", func(ctx context.Context, conn *sqlx.Conn) ([]models.TransactionRecord, error) {
		rows, err := s.trx.List(ctx, conn, page)
		if err != nil {
			return nil, err
		}
		return models.Records(rows), nil
	})
}

func (s *TransactionService) ListByUser(ctx context.Context, userID int, page models.Page) ([]models.TransactionRecord, error) {
	return withConn(ctx, s, "transactionsByUser", func(ctx context.Context, conn *sqlx.Conn) ([]models.TransactionRecord, error) {
		rows, err := s.trx.ListByUser(ctx, conn, userID, page)
		if err != nil {
			return nil, err
		}
		return models.Records(rows), nil
	})
}

// Get returns nil, nil when no transaction has the given id.
func (s *TransactionService) Get(ctx context.Context, id string) (*models.TransactionRecord, error) {
	key, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, s.fail("transaction", time.Now(), repo.NewQueryError("transaction", fmt.Errorf("invalid id %q: %w", id, err)))
	}
	return withConn(ctx, s, "transaction", func(ctx context.Context, conn *sqlx.Conn) (*models.TransactionRecord, error) {
		tx, found, err := s.trx.GetByID(ctx, conn, key)
		if err != nil || !found {
			return nil, err
		}
		rec := tx.Record()
		return &rec, nil
	})
}

func (s *TransactionService) TopStocks(ctx context.Context) ([]models.TopStock, error) {
	return withConn(ctx, s, "topStocks", func(ctx context.Context, conn *sqlx.Conn) ([]models.TopStock, error) {
		rows, err := s.trx.TopStocks(ctx, conn)
		if err != nil {
			return nil, err
		}
		return models.TopStocks(rows), nil
	})
}

// ----------------- Mutations -----------------

func (s *TransactionService) Create(ctx context.Context, in models.NewTransaction) (models.TransactionResponse, error) {
	return withConn(ctx, s, "createTransaction", func(ctx context.Context, conn *sqlx.Conn) (models.TransactionResponse, error) {
		tx, err := s.trx.Create(ctx, conn, in)
		if err != nil {
			return models.TransactionResponse{}, err
		}
		if tx != nil {
			metrics.TransactionsCreated.Inc()
			slog.Info("transaction recorded", "id", tx.ID, "user_id", tx.UserID, "symbol", tx.StockSymbol)
		}
		return models.Created(tx), nil
	})
}
