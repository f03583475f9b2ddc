// internal/service/account_service.go
package service

import (
	"context"
	"fmt"

	"demobank/internal/domain"
	"demobank/internal/repository"
)

// AccountService defines the interface for account queries.
type AccountService interface {
	// ListAccounts returns the accounts owned by userID in insertion order.
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
}

type accountService struct {
	store       repository.Store
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(store repository.Store, accountRepo repository.AccountRepository) AccountService {
	return &accountService{store: store, accountRepo: accountRepo}
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.store.View(ctx, func(tx repository.Tx) error {
		var err error
		accounts, err = s.accountRepo.ListByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("list accounts: failed to list accounts for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
