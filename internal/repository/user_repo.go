// internal/repository/user_repo.go
package repository

import (
	"context"

	"demobank/internal/domain"
)

// UserRepository defines the interface for user record operations.
type UserRepository interface {
	// Create adds a new user using the provided Tx. IDs are caller-assigned.
	Create(ctx context.Context, tx Tx, user *domain.User) error
	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, tx Tx, id int64) (*domain.User, error)
	// GetByUsername retrieves a user by exact (case-sensitive) username.
	GetByUsername(ctx context.Context, tx Tx, username string) (*domain.User, error)
}
