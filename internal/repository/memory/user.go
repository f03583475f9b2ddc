// internal/repository/memory/user.go
package memory

import (
	"context"
	"fmt"

	"demobank/internal/domain"
	"demobank/internal/repository"
	"demobank/internal/util"
)

// UserRepository implements repository.UserRepository over the memory store.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// Create adds a new user. Usernames and ids must be unique.
func (r *UserRepository) Create(ctx context.Context, tx repository.Tx, user *domain.User) error {
	t, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if !t.writable {
		return util.ErrReadOnlyTx
	}
	for _, u := range t.s.users {
		if u.ID == user.ID || u.Username == user.Username {
			return fmt.Errorf("failed to create user %q: %w", user.Username, util.ErrDuplicateEntry)
		}
	}
	t.s.users = append(t.s.users, *user)
	return nil
}

// GetByID retrieves a user snapshot by id.
func (r *UserRepository) GetByID(ctx context.Context, tx repository.Tx, id int64) (*domain.User, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	for i := range t.s.users {
		if t.s.users[i].ID == id {
			cp := t.s.users[i]
			return &cp, nil
		}
	}
	return nil, util.ErrNotFound
}

// GetByUsername retrieves a user snapshot by exact username match.
func (r *UserRepository) GetByUsername(ctx context.Context, tx repository.Tx, username string) (*domain.User, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	for i := range t.s.users {
		if t.s.users[i].Username == username {
			cp := t.s.users[i]
			return &cp, nil
		}
	}
	return nil, util.ErrNotFound
}
