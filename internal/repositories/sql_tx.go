package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// sqlTx is satisfied by both *sql.DB and *sql.Tx.
type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, sqlTx(tx))
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbWrite
}

// extractTxRead prefers the running transaction so reads see its own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbRead
}
