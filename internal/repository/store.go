// internal/repository/store.go
package repository

import "context"

// Tx is the unit-of-work handle threaded through every repository call.
// Concrete stores type-assert it to their own transaction type, so a Tx must
// never cross between stores.
type Tx interface {
	// Writable reports whether the transaction may mutate state.
	Writable() bool
}

// Store hands out transactions over the backing state.
//
// View runs fn under a shared lock and observes a consistent snapshot.
// Update runs fn under an exclusive lock; the whole read-validate-mutate-append
// sequence of a transfer runs inside a single Update so that two concurrent
// transfers can never both pass the balance check against a stale balance.
type Store interface {
	View(ctx context.Context, fn func(Tx) error) error
	Update(ctx context.Context, fn func(Tx) error) error
}
