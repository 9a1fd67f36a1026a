package identity

import (
	"strings"
	"time"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Username and password constraints enforced at account creation
const (
	MinUsernameLength = 4
	MaxUsernameLength = 20
	MinPasswordLength = 6
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a registered account. Accounts are created at registration
// and never mutated or deleted afterwards.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new user with a hashed password
func NewUser(username, password string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ValidateUsername validates the username against the account constraints
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 4 and 20 characters")
	}
	return nil
}

// ValidatePassword validates the password against the account constraints
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	return nil
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
