// internal/repository/account_repo.go
package repository

import (
	"context"

	"demobank/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account record operations.
// It is a dumb key-value container over account records keyed by id; it
// validates nothing beyond existence.
type AccountRepository interface {
	// Create adds a new account using the provided Tx. IDs are caller-assigned.
	Create(ctx context.Context, tx Tx, account *domain.Account) error
	// GetByID retrieves an account by id.
	GetByID(ctx context.Context, tx Tx, id int64) (*domain.Account, error)
	// ListByUserID retrieves the accounts owned by a user in insertion order.
	ListByUserID(ctx context.Context, tx Tx, userID int64) ([]domain.Account, error)
	// ApplyDelta adjusts an account balance by a signed amount. The caller has
	// already confirmed the account exists and, for debits, that sufficient
	// balance was confirmed under the same Tx.
	ApplyDelta(ctx context.Context, tx Tx, accountID int64, delta decimal.Decimal) error
}
