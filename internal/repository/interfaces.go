package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/baharkarakas/trade-ledger/internal/models"
)

// Transactions runs each operation's statement on a connection owned by
// the caller. Implementations hold no per-call state.
type Transactions interface {
	List(ctx context.Context, q sqlx.QueryerContext, page models.Page) ([]models.Transaction, error)
	ListByUser(ctx context.Context, q sqlx.QueryerContext, userID int, page models.Page) ([]models.Transaction, error)
	// GetByID reports found=false, with a nil error, when no row has id.
	GetByID(ctx context.Context, q sqlx.QueryerContext, id int64) (tx models.Transaction, found bool, err error)
	TopStocks(ctx context.Context, q sqlx.QueryerContext) ([]models.TopStock, error)
	Create(ctx context.Context, q sqlx.QueryerContext, in models.NewTransaction) (*models.Transaction, error)
}
