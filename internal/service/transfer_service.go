// internal/service/transfer_service.go
package service

import (
	"context"
	"fmt"

	"demobank/internal/domain"
	"demobank/internal/repository"
	"demobank/internal/util"

	"github.com/shopspring/decimal"
)

// TransferService defines the interface for transfer-related business logic.
type TransferService interface {
	// Execute validates and performs a transfer on behalf of actingUserID,
	// returning the created ledger entry.
	Execute(ctx context.Context, actingUserID, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transfer, error)
	// History returns the transfers touching any account owned by userID, in
	// append order.
	History(ctx context.Context, userID int64) ([]domain.Transfer, error)
}

// transferService implements the TransferService interface.
type transferService struct {
	store        repository.Store
	accountRepo  repository.AccountRepository
	transferRepo repository.TransferRepository
}

// NewTransferService creates a new instance of TransferService.
func NewTransferService(
	store repository.Store,
	accountRepo repository.AccountRepository,
	transferRepo repository.TransferRepository,
) TransferService {
	return &transferService{
		store:        store,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

// Execute runs the validation sequence in a fixed order (first failing check
// wins) and only then mutates state. Checks that need account state plus the
// mutations and the ledger append run inside a single Update, so either both
// balance mutations and the append happen or none of them do.
func (s *transferService) Execute(ctx context.Context, actingUserID, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transfer, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}
	if fromAccountID == 0 || toAccountID == 0 {
		return nil, util.ErrInvalidInput
	}

	var created *domain.Transfer
	err := s.store.Update(ctx, func(tx repository.Tx) error {
		from, err := s.accountRepo.GetByID(ctx, tx, fromAccountID)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return util.ErrSourceUnauthorized
			}
			return fmt.Errorf("transfer: failed to get source account %d: %w", fromAccountID, err)
		}
		if from.UserID != actingUserID {
			return util.ErrSourceUnauthorized
		}

		to, err := s.accountRepo.GetByID(ctx, tx, toAccountID)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return util.ErrDestinationNotFound
			}
			return fmt.Errorf("transfer: failed to get destination account %d: %w", toAccountID, err)
		}

		if from.Balance.LessThan(amount) {
			return util.ErrInsufficientFunds
		}

		if err := s.accountRepo.ApplyDelta(ctx, tx, from.ID, amount.Neg()); err != nil {
			return fmt.Errorf("transfer: failed to debit account %d: %w", from.ID, err)
		}
		if err := s.accountRepo.ApplyDelta(ctx, tx, to.ID, amount); err != nil {
			return fmt.Errorf("transfer: failed to credit account %d: %w", to.ID, err)
		}

		// Echo back the resolved canonical ids, not the raw submitted forms.
		created, err = s.transferRepo.Append(ctx, tx, from.ID, to.ID, amount)
		if err != nil {
			return fmt.Errorf("transfer: failed to append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// History resolves the caller's account ids and the matching ledger entries
// inside one View so the result is a consistent snapshot.
func (s *transferService) History(ctx context.Context, userID int64) ([]domain.Transfer, error) {
	var transfers []domain.Transfer
	err := s.store.View(ctx, func(tx repository.Tx) error {
		accounts, err := s.accountRepo.ListByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("history: failed to list accounts for user %d: %w", userID, err)
		}
		ids := make([]int64, 0, len(accounts))
		for _, a := range accounts {
			ids = append(ids, a.ID)
		}
		transfers, err = s.transferRepo.ListByAccountIDs(ctx, tx, ids)
		if err != nil {
			return fmt.Errorf("history: failed to list transfers for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transfers, nil
}
