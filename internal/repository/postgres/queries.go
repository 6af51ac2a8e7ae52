package postgres

import (
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/trade-ledger/internal/models"
)

// Every caller-supplied value is bound as a $n parameter; nothing from a
// request is ever concatenated into the statement text.

const transactionColumns = `id, user_id, stock_symbol, shares, price, timestamp`

// id breaks timestamp ties so pages don't overlap.
const newestFirst = `ORDER BY timestamp DESC, id DESC`

const (
	topStocksWindow = "24 hours"
	topStocksLimit  = 5
)

func listTransactionsQuery(page models.Page) (string, []any) {
	limit, offset := page.Resolve()
	return `
SELECT ` + transactionColumns + `
  FROM transactions
 ` + newestFirst + `
 LIMIT $1 OFFSET $2`, []any{limit, offset}
}

func transactionsByUserQuery(userID int, page models.Page) (string, []any) {
	limit, offset := page.Resolve()
	return `
SELECT ` + transactionColumns + `
  FROM transactions
 WHERE user_id = $1
 ` + newestFirst + `
 LIMIT $2 OFFSET $3`, []any{userID, limit, offset}
}

func transactionByIDQuery(id int64) (string, []any) {
	return `
SELECT ` + transactionColumns + `
  FROM transactions
 WHERE id = $1`, []any{id}
}

func topStocksQuery() (string, []any) {
	return `
SELECT stock_symbol, SUM(shares) AS total_shares
  FROM transactions
 WHERE timestamp >= NOW() - $1::interval
 GROUP BY stock_symbol
 ORDER BY SUM(shares) DESC
 LIMIT $2`, []any{topStocksWindow, topStocksLimit}
}

func createTransactionQuery(in models.NewTransaction) (string, []any) {
	price := decimal.NewFromFloat(in.Price).Round(2)
	return `
INSERT INTO transactions (user_id, stock_symbol, shares, price, timestamp)
VALUES ($1, $2, $3, $4, NOW())
RETURNING ` + transactionColumns, []any{in.UserID, in.StockSymbol, in.Shares, price}
}
