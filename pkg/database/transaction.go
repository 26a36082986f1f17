package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxFunc is the function type executed inside a transaction
type TxFunc func(pgx.Tx) error

// TxRunner executes a unit of work transactionally. Services depend on
// this instead of a concrete pool so tests can substitute a runner that
// invokes the function directly.
type TxRunner interface {
	RunTx(ctx context.Context, fn TxFunc) error
}

// PoolRunner is the production TxRunner backed by a pgx pool.
type PoolRunner struct {
	Pool *pgxpool.Pool
}

func (r PoolRunner) RunTx(ctx context.Context, fn TxFunc) error {
	return WithTransaction(ctx, r.Pool, fn)
}

// WithTransaction wraps a function in a transaction.
// Auto rollback on error or panic, auto commit on success.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TxFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback is a no-op once the transaction has committed
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			tx.Rollback(ctx)
		}
	}()

	err = fn(tx)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
