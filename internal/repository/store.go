package repository

import "context"

// Tx groups the repositories participating in one request's unit of work.
// All operations obtained from the same Tx run on the same store session.
type Tx interface {
	Advs() AdvRepository
	Users() UserRepository
}

// Store opens transaction-scoped access to the repositories.
// One incoming request maps to exactly one WithinTx call.
type Store interface {
	// WithinTx runs fn inside a single transaction. The transaction commits
	// when fn returns nil and rolls back otherwise, so a failed flow leaves
	// no partial writes. The session is released on every exit path,
	// including panics.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
