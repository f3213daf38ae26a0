package executor

import (
	"context"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxTxKey struct{}

// WithPgxTx puts transaction into context, executors built from the same pool will run on it
func WithPgxTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey{}, tx)
}

func pgxTxValue(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// PgxQueryExecutor is anything able to run queries: pool, connection or transaction
type PgxQueryExecutor interface {
	pgxtype.Querier
}

// PgxExecutorProvider picks executor for the current call
type PgxExecutorProvider interface {
	Executor(ctx context.Context) PgxQueryExecutor
}

type pgxExecutorProvider struct {
	pool *pgxpool.Pool
}

// NewPgxExecutorProvider builds provider on top of pool
func NewPgxExecutorProvider(p *pgxpool.Pool) PgxExecutorProvider {
	return &pgxExecutorProvider{pool: p}
}

func (e *pgxExecutorProvider) Executor(ctx context.Context) PgxQueryExecutor {
	if tx := pgxTxValue(ctx); tx != nil {
		return tx
	}
	return e.pool
}
