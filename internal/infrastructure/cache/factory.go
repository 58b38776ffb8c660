package cache

import (
	"fmt"

	"github.com/hourbill/backend/internal/application/identity"
	"github.com/hourbill/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdentityCache creates an identity cache based on configuration.
// When Redis is enabled it is tried first; if it is unreachable the
// cache falls back to the in-memory implementation so a cache outage
// never blocks sign-in.
func NewIdentityCache(cfg config.RedisConfig, logger *zap.Logger) identity.IdentityCache {
	if !cfg.Enabled {
		return NewInMemoryIdentityCache()
	}

	redisCache, err := NewRedisIdentityCache(RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory identity cache",
			zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
			zap.Error(err),
		)
		return NewInMemoryIdentityCache()
	}

	logger.Info("using Redis identity cache")
	return redisCache
}
