// internal/seed/seed.go

// Package seed loads the static demo fixtures at process start. Not for real
// banking; the credential values are intentionally well-known demo data.
package seed

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"demobank/internal/domain"
	"demobank/internal/repository"

	"github.com/shopspring/decimal"
)

type userFixture struct {
	id       int64
	username string
	password string
	name     string
}

type accountFixture struct {
	id      int64
	userID  int64
	accType domain.AccountType
	balance int64
}

var users = []userFixture{
	{id: 1, username: "alice", password: "password123", name: "Alice Doe"},
	{id: 2, username: "bob", password: "password123", name: "Bob Smith"},
}

var accounts = []accountFixture{
	{id: 1001, userID: 1, accType: domain.AccountTypeChecking, balance: 1000},
	{id: 1002, userID: 1, accType: domain.AccountTypeSavings, balance: 5000},
	{id: 2001, userID: 2, accType: domain.AccountTypeChecking, balance: 750},
}

// Load inserts the demo users and accounts in one critical section.
// Credentials are bcrypt-hashed at load time so the stores only ever hold
// opaque comparison-only values.
func Load(ctx context.Context, store repository.Store, userRepo repository.UserRepository, accountRepo repository.AccountRepository) error {
	return store.Update(ctx, func(tx repository.Tx) error {
		for _, f := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("seed: failed to hash credential for %q: %w", f.username, err)
			}
			user := domain.NewUser(f.id, f.username, f.name, hash)
			if err := userRepo.Create(ctx, tx, user); err != nil {
				return fmt.Errorf("seed: failed to create user %q: %w", f.username, err)
			}
		}
		for _, f := range accounts {
			account := domain.NewAccount(f.id, f.userID, f.accType, decimal.NewFromInt(f.balance))
			if err := accountRepo.Create(ctx, tx, account); err != nil {
				return fmt.Errorf("seed: failed to create account %d: %w", f.id, err)
			}
		}
		return nil
	})
}
