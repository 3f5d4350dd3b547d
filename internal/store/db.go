package store

import (
	"context"
	"database/sql"
)

// DBTX is the common subset of *sql.DB and *sql.Tx used by the store
// implementations. Accepting this interface lets a store run against either
// a pooled connection or an explicit transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
