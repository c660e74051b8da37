package ports

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// PasswordHasher produces and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never returns an error: a malformed hash simply does not match.
	Verify(plaintext, hash string) bool
}

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Issue(userID string, role domain.Role) (string, error)
	// Verify returns domain.ErrTokenMissing, domain.ErrTokenExpired or
	// domain.ErrTokenInvalid on failure.
	Verify(token string) (*domain.SessionClaims, error)
}

// LoginThrottle tracks failed logins per user id.
type LoginThrottle interface {
	Locked(ctx context.Context, userID string) (bool, error)
	RecordFailure(ctx context.Context, userID string) error
	Reset(ctx context.Context, userID string) error
}
