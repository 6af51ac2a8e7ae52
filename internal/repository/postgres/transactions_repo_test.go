package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/trade-ledger/internal/models"
	"github.com/baharkarakas/trade-ledger/internal/repository"
)

var txColumns = []string{"id", "user_id", "stock_symbol", "shares", "price", "timestamp"}

func setupConn(t *testing.T) (*sqlx.Conn, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	conn, err := db.Connx(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = db.Close()
	})
	return conn, mock
}

func TestList_ScansRowsInOrder(t *testing.T) {
	conn, mock := setupConn(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(txColumns).
			AddRow(int64(9), 1, "AAPL", 10, "100.00", now).
			AddRow(int64(8), 2, "TSLA", 5, "250.50", now.Add(-time.Minute)))

	got, err := NewTransactions().List(context.Background(), conn, models.Page{Limit: intp(2), Offset: intp(1)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(9), got[0].ID)
	assert.Equal(t, "250.5", got[1].Price.String())
	assert.True(t, got[0].Timestamp.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_FiltersByUser(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(3, 10, 0).
		WillReturnRows(sqlmock.NewRows(txColumns))

	got, err := NewTransactions().ListByUser(context.Background(), conn, 3, models.Page{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Absent(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(txColumns))

	_, found, err := NewTransactions().GetByID(context.Background(), conn, 404)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetByID_Found(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(txColumns).AddRow(int64(5), 1, "NVDA", 3, "410.10", time.Now()))

	tx, found, err := NewTransactions().GetByID(context.Background(), conn, 5)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "NVDA", tx.StockSymbol)
}

func TestGetByID_StoreError(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrConnDone)

	_, found, err := NewTransactions().GetByID(context.Background(), conn, 5)
	assert.False(t, found)
	var qe *repository.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "transaction", qe.Op)
}

func TestTopStocks(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY stock_symbol")).
		WithArgs("24 hours", 5).
		WillReturnRows(sqlmock.NewRows([]string{"stock_symbol", "total_shares"}).
			AddRow("AAPL", int64(15)).
			AddRow("MSFT", int64(4)))

	got, err := NewTransactions().TopStocks(context.Background(), conn)
	require.NoError(t, err)
	assert.Equal(t, []models.TopStock{{StockSymbol: "AAPL", TotalShares: 15}, {StockSymbol: "MSFT", TotalShares: 4}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReturnsInsertedRow(t *testing.T) {
	conn, mock := setupConn(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(1, "AAPL", 10, "100.5").
		WillReturnRows(sqlmock.NewRows(txColumns).AddRow(int64(201), 1, "AAPL", 10, "100.50", now))

	tx, err := NewTransactions().Create(context.Background(), conn, models.NewTransaction{UserID: 1, StockSymbol: "AAPL", Shares: 10, Price: 100.5})
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, int64(201), tx.ID)
	assert.Equal(t, now, tx.Timestamp.Time)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ForeignKeyViolation(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnError(&pgconn.PgError{Code: repository.CodeForeignKeyViolation, Message: "violates foreign key constraint"})

	tx, err := NewTransactions().Create(context.Background(), conn, models.NewTransaction{UserID: 999, StockSymbol: "AAPL", Shares: 1, Price: 1})
	assert.Nil(t, tx)
	assert.True(t, repository.IsForeignKeyViolation(err))
}
