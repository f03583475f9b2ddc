// internal/domain/user.go
package domain

// User represents an identity in the banking demo. Users are created once at
// process start from seed data and are immutable thereafter.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"` // unique, case-sensitive
	Name         string `json:"name"`
	PasswordHash []byte `json:"-"` // bcrypt hash, comparison-only, never serialized
}

// NewUser creates a new User instance.
func NewUser(id int64, username, name string, passwordHash []byte) *User {
	return &User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
	}
}
