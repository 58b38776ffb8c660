package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/identity"
)

// ResolvedUser is the identity attached to an authenticated request
type ResolvedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// IdentityCache memoizes email-to-user resolution so the lazy upsert
// only hits the database on the first request for an email. A cache
// failure is treated as a miss, never as a request failure.
type IdentityCache interface {
	// Get returns the cached identity for an email, or nil on miss
	Get(ctx context.Context, email string) (*ResolvedUser, error)

	// Set stores the identity under its email
	Set(ctx context.Context, user ResolvedUser) error
}

// UserService resolves authenticated identities to user records. Users
// are created lazily on their first authenticated request.
type UserService struct {
	userRepo identity.UserRepository
	cache    IdentityCache
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, cache IdentityCache) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Resolve returns the user for the given email, creating it if this is
// the first request for that email. The name is only written on
// creation.
func (s *UserService) Resolve(ctx context.Context, email, name string) (*ResolvedUser, error) {
	if cached, err := s.cache.Get(ctx, email); err == nil && cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.UpsertByEmail(ctx, email, name)
	if err != nil {
		return nil, err
	}

	resolved := ResolvedUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	// Best effort; resolution already succeeded
	_ = s.cache.Set(ctx, resolved)

	return &resolved, nil
}
