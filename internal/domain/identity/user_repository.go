package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email address
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpsertByEmail returns the user with the given email, creating it
	// if no such user exists. The name is only written on creation.
	UpsertByEmail(ctx context.Context, email, name string) (*User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
