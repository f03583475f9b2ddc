// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"demobank/internal/domain"
	"demobank/internal/repository"
	"demobank/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and resolves authenticated user ids. It is
// the only component that ever sees raw credentials.
type AuthService interface {
	// Login checks username and password and returns the matching user.
	// Unknown user and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// UserByID resolves an already-authenticated user id.
	UserByID(ctx context.Context, id int64) (*domain.User, error)
}

type authService struct {
	store    repository.Store
	userRepo repository.UserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(store repository.Store, userRepo repository.UserRepository) AuthService {
	return &authService{store: store, userRepo: userRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var user *domain.User
	err := s.store.View(ctx, func(tx repository.Tx) error {
		u, err := s.userRepo.GetByUsername(ctx, tx, username)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return util.ErrInvalidCredentials
			}
			return fmt.Errorf("login: failed to look up user %q: %w", username, err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := s.store.View(ctx, func(tx repository.Tx) error {
		u, err := s.userRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get user %d: %w", id, err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
