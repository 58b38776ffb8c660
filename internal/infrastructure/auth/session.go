package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid session token")
	ErrExpiredToken     = errors.New("session token has expired")
	ErrTokenNotYetValid = errors.New("session token is not yet valid")
	ErrInvalidClaims    = errors.New("invalid session claims")
	ErrMissingEmail     = errors.New("missing email in claims")
)

// SessionClaims carries the authenticated identity inside a session
// token. The email is the identity anchor; the user row is resolved
// lazily from it on each request.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SessionService signs and verifies session tokens
type SessionService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	audience   string
}

// NewSessionService creates a new session service. The audience is the
// canonical application URL so tokens issued for one deployment are
// rejected by another.
func NewSessionService(cfg config.SessionConfig, appURL string) *SessionService {
	return &SessionService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.TokenExpiration,
		issuer:     cfg.Issuer,
		audience:   appURL,
	}
}

// Issue creates a signed session token for the given identity
func (s *SessionService) Issue(email, name string) (string, error) {
	if email == "" {
		return "", ErrMissingEmail
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   email,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
		Name:  name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a session token and returns its claims
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.Email == "" {
		return nil, ErrMissingEmail
	}

	return claims, nil
}

// Expiration returns the configured token lifetime
func (s *SessionService) Expiration() time.Duration {
	return s.expiration
}
