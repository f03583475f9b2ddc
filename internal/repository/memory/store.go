// internal/repository/memory/store.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"demobank/internal/domain"
	"demobank/internal/repository"
)

// Store holds all process state behind a single RWMutex. An Update holds the
// exclusive lock for the whole closure, so a transfer's read-validate-mutate-
// append sequence is one critical section and readers never observe a
// half-updated account pair. All state resets on restart.
type Store struct {
	mu    sync.RWMutex
	state state
}

type state struct {
	users          []domain.User
	accounts       []*domain.Account // insertion order
	accountsByID   map[int64]*domain.Account
	transfers      []domain.Transfer // append order
	nextTransferID int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		state: state{
			accountsByID:   make(map[int64]*domain.Account),
			nextTransferID: 1,
		},
	}
}

// memTx implements repository.Tx for this store. It is only valid for the
// duration of the View or Update call that created it.
type memTx struct {
	s        *state
	writable bool
}

func (t *memTx) Writable() bool { return t.writable }

// View runs fn under the shared lock.
func (st *Store) View(ctx context.Context, fn func(repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return fn(&memTx{s: &st.state})
}

// Update runs fn under the exclusive lock.
func (st *Store) Update(ctx context.Context, fn func(repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return fn(&memTx{s: &st.state, writable: true})
}

// asMemTx unwraps a repository.Tx issued by this store.
func asMemTx(tx repository.Tx) (*memTx, error) {
	t, ok := tx.(*memTx)
	if !ok {
		return nil, fmt.Errorf("transaction does not belong to the memory store")
	}
	return t, nil
}
