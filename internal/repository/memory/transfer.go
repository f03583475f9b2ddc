// internal/repository/memory/transfer.go
package memory

import (
	"context"
	"time"

	"demobank/internal/domain"
	"demobank/internal/repository"
	"demobank/internal/util"

	"github.com/shopspring/decimal"
)

// TransferRepository implements repository.TransferRepository over the memory
// store. The ledger is append-only; ids start at 1 and are never reused.
type TransferRepository struct{}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository() repository.TransferRepository {
	return &TransferRepository{}
}

// Append records a completed transfer with the next ledger id.
func (r *TransferRepository) Append(ctx context.Context, tx repository.Tx, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transfer, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	if !t.writable {
		return nil, util.ErrReadOnlyTx
	}
	entry := domain.Transfer{
		ID:            t.s.nextTransferID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Timestamp:     time.Now().UTC(),
	}
	t.s.nextTransferID++
	t.s.transfers = append(t.s.transfers, entry)
	cp := entry
	return &cp, nil
}

// ListByAccountIDs retrieves transfers touching any of the given accounts, in
// append order.
func (r *TransferRepository) ListByAccountIDs(ctx context.Context, tx repository.Tx, accountIDs []int64) ([]domain.Transfer, error) {
	t, err := asMemTx(tx)
	if err != nil {
		return nil, err
	}
	ids := make(map[int64]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		ids[id] = struct{}{}
	}
	out := []domain.Transfer{}
	for _, tr := range t.s.transfers {
		if _, ok := ids[tr.FromAccountID]; ok {
			out = append(out, tr)
			continue
		}
		if _, ok := ids[tr.ToAccountID]; ok {
			out = append(out, tr)
		}
	}
	return out, nil
}
