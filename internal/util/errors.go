// internal/util/errors.go
package util

import "errors"

// Common application-specific errors. All transfer failures are terminal for
// the request; the caller must re-submit with corrected input.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid transfer data")
	ErrSourceUnauthorized  = errors.New("from account not found or not owned by user")
	ErrDestinationNotFound = errors.New("to account not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("unauthorized")
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrReadOnlyTx          = errors.New("write attempted on read-only transaction")
)

// IsError reports whether err matches target in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
