// internal/domain/account.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// AccountType categorizes an account. The set is open: unknown values are
// carried through untouched and never gate business logic.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Account is a balance-holding record owned by exactly one user. Balances
// mutate only through the transfer service; non-negativity is enforced at
// transfer time from the source side, not at rest.
type Account struct {
	ID      int64           `json:"id"` // globally unique across all users
	UserID  int64           `json:"userId"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// NewAccount creates a new Account instance.
func NewAccount(id, userID int64, accountType AccountType, balance decimal.Decimal) *Account {
	return &Account{
		ID:      id,
		UserID:  userID,
		Type:    accountType,
		Balance: balance,
	}
}
