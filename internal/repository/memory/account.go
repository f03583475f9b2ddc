// internal/repository/memory/account.go
package memory

import (
	"context"
	"fmt"

	"demobank/internal/domain"
	"demobank/internal/repository"
	"demobank/internal/util"

	"github.com/shopspring/decimal"
)

// AccountRepository implements repository.AccountRepository over the memory
// store. Getters return copies so callers can never reach internal state.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{}
}

// Create adds a new account. IDs must be globally unique.
func (r *AccountRepository) Create(ctx context.Context, tx repository.Tx, account *domain.Account) error {
	t, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if !t.writable {
		return util.ErrReadOnlyTx
	}
	if _, ok := t.s.accountsByID[account.ID]; ok {
		return fmt.Errorf("failed to create account %d: %w", account.ID, util.ErrDuplicateEntry)
	}
	cp := *account
	t.s.accounts = append(t.s.accounts, &cp)
	t.s.accountsByID[cp.ID] = &cp
	return nil
}

// GetByID retrieves an account snapshot by id.
func (r *AccountRepository) GetByID(ctx context.Context, tx repository.Tx, id int64) (*domain.Account, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	a, ok := t.s.accountsByID[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// ListByUserID retrieves snapshots of a user's accounts in insertion order.
func (r *AccountRepository) ListByUserID(ctx context.Context, tx repository.Tx, userID int64) ([]domain.Account, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	out := []domain.Account{}
	for _, a := range t.s.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ApplyDelta adjusts an account balance by a signed amount.
func (r *AccountRepository) ApplyDelta(ctx context.Context, tx repository.Tx, accountID int64, delta decimal.Decimal) error {
	t, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if !t.writable {
		return util.ErrReadOnlyTx
	}
	a, ok := t.s.accountsByID[accountID]
	if !ok {
		return fmt.Errorf("failed to apply delta to account %d: %w", accountID, util.ErrNotFound)
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}
