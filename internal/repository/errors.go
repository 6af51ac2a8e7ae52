package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// QueryError reports a statement the store refused or an argument that
// could not be turned into one.
type QueryError struct {
	Op   string
	Code string // SQLSTATE, empty when the store did not report one
	Err  error
}

func (e *QueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %v (sqlstate %s)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// NewQueryError wraps err for op, lifting the SQLSTATE out of a *pgconn.PgError.
func NewQueryError(op string, err error) *QueryError {
	qe := &QueryError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		qe.Code = pgErr.Code
	}
	return qe
}

const (
	CodeForeignKeyViolation = "23503"
	CodeInvalidRowCount     = "2201W" // negative LIMIT
	CodeInvalidOffset       = "2201X" // negative OFFSET
)

// IsForeignKeyViolation reports whether err came from an unknown referenced row.
func IsForeignKeyViolation(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == CodeForeignKeyViolation
}
