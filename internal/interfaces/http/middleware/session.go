package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	identityapp "github.com/hourbill/backend/internal/application/identity"
	"github.com/hourbill/backend/internal/infrastructure/auth"
	"github.com/hourbill/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Session context keys
const (
	CurrentUserKey = "current_user"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// IdentityResolver resolves a verified email to a user record, creating
// the user lazily on first sight.
type IdentityResolver interface {
	Resolve(ctx context.Context, email, name string) (*identityapp.ResolvedUser, error)
}

// SessionAuthConfig holds configuration for the session middleware
type SessionAuthConfig struct {
	// Sessions verifies bearer tokens
	Sessions *auth.SessionService
	// Resolver turns the token's email into a user record
	Resolver IdentityResolver
	// Logger is optional; resolution failures are logged when set
	Logger *zap.Logger
}

// SessionAuth gates a route group behind bearer session tokens. The
// token is verified once per request; its email is resolved through
// the identity cache and the resulting user is stored in the gin
// context for handlers to read. Every failure mode is a uniform 401.
func SessionAuth(cfg SessionAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			unauthorized(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := cfg.Sessions.Verify(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := cfg.Resolver.Resolve(c.Request.Context(), claims.Email, claims.Name)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("identity resolution failed",
					zap.String("email", claims.Email),
					zap.Error(err),
				)
			}
			unauthorized(c)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser returns the authenticated user stored by SessionAuth,
// or nil when the request did not pass through it.
func GetCurrentUser(c *gin.Context) *identityapp.ResolvedUser {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*identityapp.ResolvedUser)
	if !ok {
		return nil
	}
	return user
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
}
