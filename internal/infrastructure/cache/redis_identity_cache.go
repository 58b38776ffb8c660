package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hourbill/backend/internal/application/identity"
	"github.com/redis/go-redis/v9"
)

const identityCacheTTL = 15 * time.Minute

// RedisIdentityCache implements identity.IdentityCache using Redis
type RedisIdentityCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
}

// RedisConfig holds Redis connection parameters for the cache
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisIdentityCache creates a new Redis-backed identity cache and
// verifies the connection
func NewRedisIdentityCache(cfg RedisConfig) (*RedisIdentityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisIdentityCache{
		client:     client,
		ownsClient: true,
		ttl:        identityCacheTTL,
	}, nil
}

// NewRedisIdentityCacheWithClient creates a cache with an existing
// Redis client. The caller retains ownership of the client.
func NewRedisIdentityCacheWithClient(client *redis.Client) *RedisIdentityCache {
	return &RedisIdentityCache{
		client:     client,
		ownsClient: false,
		ttl:        identityCacheTTL,
	}
}

func (c *RedisIdentityCache) cacheKey(email string) string {
	return fmt.Sprintf("identity:%s", email)
}

// Get returns the cached identity for an email, or nil on miss
func (c *RedisIdentityCache) Get(ctx context.Context, email string) (*identity.ResolvedUser, error) {
	data, err := c.client.Get(ctx, c.cacheKey(email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user identity.ResolvedUser
	if err := json.Unmarshal(data, &user); err != nil {
		// A corrupt entry is a miss; it will be overwritten on Set
		return nil, nil
	}
	return &user, nil
}

// Set stores the identity under its email
func (c *RedisIdentityCache) Set(ctx context.Context, user identity.ResolvedUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.cacheKey(user.Email), data, c.ttl).Err()
}

// Close releases the Redis client if this cache owns it
func (c *RedisIdentityCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
