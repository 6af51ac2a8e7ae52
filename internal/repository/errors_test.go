package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNewQueryError_LiftsSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: CodeForeignKeyViolation, Message: "violates foreign key constraint"}
	err := NewQueryError("createTransaction", fmt.Errorf("insert: %w", pgErr))

	assert.Equal(t, CodeForeignKeyViolation, err.Code)
	assert.True(t, IsForeignKeyViolation(err))
	assert.ErrorIs(t, err, pgErr)
	assert.Contains(t, err.Error(), "sqlstate 23503")
}

func TestNewQueryError_PlainError(t *testing.T) {
	err := NewQueryError("transactions", errors.New("boom"))

	assert.Empty(t, err.Code)
	assert.False(t, IsForeignKeyViolation(err))
	assert.Equal(t, "transactions: boom", err.Error())
}
