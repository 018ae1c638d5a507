// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"advboard/internal/repository"
	"advboard/internal/resilience/circuitbreaker"
)

// Querier is the subset of database/sql operations the repositories need.
// Both *sql.DB and *sql.Tx satisfy it, so the same repository code serves
// standalone use and transaction-scoped use.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides transaction-scoped repository access over a connection pool.
// Each WithinTx call acquires a fresh session and releases it on every exit
// path.
type Store struct {
	db *sql.DB
	cb *circuitbreaker.CircuitBreaker
}

// NewStore creates a Store. The circuit breaker may be nil to disable
// protection (tests, tooling).
func NewStore(db *sql.DB, cb *circuitbreaker.CircuitBreaker) *Store {
	return &Store{db: db, cb: cb}
}

// WithinTx implements repository.Store. The transaction commits when fn
// returns nil and rolls back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	run := func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		// Commit 後の Rollback は no-op。パニック時も含め必ず解放される。
		defer func() { _ = tx.Rollback() }()

		if err := fn(storeTx{tx: tx}); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	}

	if s.cb == nil {
		return run()
	}
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, run()
	})
	return err
}

// storeTx hands out repositories bound to one open transaction.
type storeTx struct{ tx *sql.Tx }

func (t storeTx) Advs() repository.AdvRepository   { return NewAdvRepo(t.tx) }
func (t storeTx) Users() repository.UserRepository { return NewUserRepo(t.tx) }
