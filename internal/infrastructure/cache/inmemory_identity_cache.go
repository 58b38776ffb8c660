package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hourbill/backend/internal/application/identity"
)

type inMemoryEntry struct {
	user      identity.ResolvedUser
	expiresAt time.Time
}

// InMemoryIdentityCache implements identity.IdentityCache with a
// process-local map. Suitable for single-instance deployments and
// tests; entries expire lazily on read.
type InMemoryIdentityCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryIdentityCache creates a new in-memory identity cache
func NewInMemoryIdentityCache() *InMemoryIdentityCache {
	return &InMemoryIdentityCache{
		entries: make(map[string]inMemoryEntry),
		ttl:     identityCacheTTL,
		now:     time.Now,
	}
}

// Get returns the cached identity for an email, or nil on miss
func (c *InMemoryIdentityCache) Get(ctx context.Context, email string) (*identity.ResolvedUser, error) {
	c.mu.RLock()
	entry, ok := c.entries[email]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, email)
		c.mu.Unlock()
		return nil, nil
	}

	user := entry.user
	return &user, nil
}

// Set stores the identity under its email
func (c *InMemoryIdentityCache) Set(ctx context.Context, user identity.ResolvedUser) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[user.Email] = inMemoryEntry{
		user:      user,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}
