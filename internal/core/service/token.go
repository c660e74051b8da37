package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of a session token. Tokens are not renewable.
const DefaultTokenTTL = 24 * time.Hour

// ErrSigningKeyMissing is returned by Issue when no secret is configured.
var ErrSigningKeyMissing = errors.New("token signing key is not configured")

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// JWTManager issues and verifies HS256 session tokens. Verification is
// stateless, so a token stays usable until it expires even if the user logs
// out; the auth gate still rejects tokens whose user has been deleted.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) Issue(userID string, role domain.Role) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrSigningKeyMissing
	}

	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Role:   role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) Verify(token string) (*domain.SessionClaims, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	// No secret means nothing can be trusted.
	if len(m.secret) == 0 {
		return nil, domain.ErrTokenInvalid
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)

	claims := &sessionClaims{}
	tkn, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.UserID == "" || claims.Subject != claims.UserID || !claims.Role.Valid() {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.SessionClaims{
		UserID:    claims.UserID,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
