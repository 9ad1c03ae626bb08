package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier is the query surface shared by *sqlx.DB and *sqlx.Conn.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type sessionKey struct{}

// WithSession binds a request-scoped connection to ctx.
func WithSession(ctx context.Context, conn *sqlx.Conn) context.Context {
	return context.WithValue(ctx, sessionKey{}, conn)
}

// Session returns the connection bound to ctx, if any.
func Session(ctx context.Context) (*sqlx.Conn, bool) {
	conn, ok := ctx.Value(sessionKey{}).(*sqlx.Conn)
	return conn, ok && conn != nil
}

// QuerierFrom prefers the request session and falls back to the shared handle.
func QuerierFrom(ctx context.Context, fallback Querier) Querier {
	if conn, ok := Session(ctx); ok {
		return conn
	}
	return fallback
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Conn)(nil)
)
