// internal/domain/transfer.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an immutable ledger entry for one executed balance movement.
// IDs are assigned by the ledger: 1-based, strictly increasing, never reused.
type Transfer struct {
	ID            int64           `json:"id"`
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"` // strictly positive
	Timestamp     time.Time       `json:"timestamp"`
}
