package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Transaction is one row of the transactions table.
type Transaction struct {
	ID          int64           `db:"id"`
	UserID      int             `db:"user_id"`
	StockSymbol string          `db:"stock_symbol"`
	Shares      int             `db:"shares"`
	Price       decimal.Decimal `db:"price"`
	Timestamp   sql.NullTime    `db:"timestamp"`
}

// TopStock is an aggregate over recent rows, never persisted.
type TopStock struct {
	StockSymbol string `db:"stock_symbol" json:"stock_symbol"`
	TotalShares int64  `db:"total_shares" json:"total_shares"`
}

type NewTransaction struct {
	UserID      int
	StockSymbol string
	Shares      int
	Price       float64
}

// Page carries optional pagination arguments; nil means not supplied.
type Page struct {
	Limit  *int
	Offset *int
}

// Resolve applies the defaults for missing values. Negative values are kept.
func (p Page) Resolve() (limit, offset int) {
	limit, offset = DefaultLimit, DefaultOffset
	if p.Limit != nil {
		limit = *p.Limit
	}
	if p.Offset != nil {
		offset = *p.Offset
	}
	return limit, offset
}

// TransactionRecord is the API shape of a Transaction.
type TransactionRecord struct {
	ID          string  `json:"id"`
	UserID      int     `json:"user_id"`
	StockSymbol string  `json:"stock_symbol"`
	Shares      int     `json:"shares"`
	Price       float64 `json:"price"`
	Timestamp   string  `json:"timestamp"`
}

const CreatedMessage = "Transaction recorded successfully"

type TransactionResponse struct {
	Message       string             `json:"message"`
	TransactionID *string            `json:"transaction_id"`
	Transaction   *TransactionRecord `json:"transaction"`
}

// TimestampLayout renders stored instants as text, seconds precision.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t with six fractional digits, or none when the
// microsecond part is zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format(TimestampLayout)
	}
	return t.Format(TimestampLayout + ".000000")
}
