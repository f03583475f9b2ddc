// internal/repository/transfer_repo.go
package repository

import (
	"context"

	"demobank/internal/domain"

	"github.com/shopspring/decimal"
)

// TransferRepository defines the interface for the append-only transfer
// ledger. Entries are never edited or removed.
type TransferRepository interface {
	// Append records a completed transfer, assigning the next ledger id
	// (1-based, strictly increasing per process lifetime) and the execution
	// timestamp. It returns the stored entry.
	Append(ctx context.Context, tx Tx, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transfer, error)
	// ListByAccountIDs retrieves transfers whose source or destination is in
	// the given account id set, in append order.
	ListByAccountIDs(ctx context.Context, tx Tx, accountIDs []int64) ([]domain.Transfer, error)
}
