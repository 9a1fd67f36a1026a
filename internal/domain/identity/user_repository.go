package identity

import (
	"context"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
)

// Errors specific to the identity context
var (
	ErrUsernameTaken = shared.NewDomainError("USERNAME_TAKEN", "Username is already taken")
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user. The implementation must be atomic with
	// respect to the username uniqueness check: concurrent registrations
	// of the same username must not both succeed.
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a username already exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Count returns the total number of registered users
	Count(ctx context.Context) (int64, error)
}
