package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/baharkarakas/trade-ledger/internal/models"
	"github.com/baharkarakas/trade-ledger/internal/repository"
)

type transactionsRepo struct{}

func NewTransactions() repository.Transactions { return &transactionsRepo{} }

func (r *transactionsRepo) List(ctx context.Context, q sqlx.QueryerContext, page models.Page) ([]models.Transaction, error) {
	query, args := listTransactionsQuery(page)
	return selectTransactions(ctx, q, "transactions", query, args)
}

func (r *transactionsRepo) ListByUser(ctx context.Context, q sqlx.QueryerContext, userID int, page models.Page) ([]models.Transaction, error) {
	query, args := transactionsByUserQuery(userID, page)
	return selectTransactions(ctx, q, "transactionsByUser", query, args)
}

func (r *transactionsRepo) GetByID(ctx context.Context, q sqlx.QueryerContext, id int64) (models.Transaction, bool, error) {
	query, args := transactionByIDQuery(id)
	var tx models.Transaction
	err := sqlx.GetContext(ctx, q, &tx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, false, nil
	}
	if err != nil {
		return models.Transaction{}, false, repository.NewQueryError("transaction", err)
	}
	return tx, true, nil
}

func (r *transactionsRepo) TopStocks(ctx context.Context, q sqlx.QueryerContext) ([]models.TopStock, error) {
	query, args := topStocksQuery()
	var out []models.TopStock
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, repository.NewQueryError("topStocks", err)
	}
	return out, nil
}

// Create inserts a single row; the store assigns id and reports it back.
func (r *transactionsRepo) Create(ctx context.Context, q sqlx.QueryerContext, in models.NewTransaction) (*models.Transaction, error) {
	query, args := createTransactionQuery(in)
	var tx models.Transaction
	err := sqlx.GetContext(ctx, q, &tx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewQueryError("createTransaction", err)
	}
	return &tx, nil
}

func selectTransactions(ctx context.Context, q sqlx.QueryerContext, op, query string, args []any) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, repository.NewQueryError(op, err)
	}
	return out, nil
}
