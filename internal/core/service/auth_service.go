package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// timingGuardPassword is hashed once so that logins for unknown users cost
// the same bcrypt comparison as logins with a wrong password.
const timingGuardPassword = "attendance-timing-guard"

// AuthService implements login, password changes and token authentication.
type AuthService struct {
	users    *Directory
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	throttle ports.LoginThrottle
	legacy   LegacyPasswords
	guard    string
	log      zerolog.Logger
}

// NewAuthService wires the auth use cases. throttle may be nil.
func NewAuthService(
	users *Directory,
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	throttle ports.LoginThrottle,
	legacy LegacyPasswords,
	log zerolog.Logger,
) *AuthService {
	guard, err := hasher.Hash(timingGuardPassword)
	if err != nil {
		log.Warn().Err(err).Msg("timing guard hash unavailable")
	}
	return &AuthService{
		users:    users,
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		legacy:   legacy,
		guard:    guard,
		log:      log,
	}
}

// Login checks the credentials and issues a session token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, *domain.User, error) {
	if userID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.locked(ctx, userID) {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.hasher.Verify(password, s.guard)
		s.recordFailure(ctx, userID)
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !s.passwordMatches(user, password) {
		s.recordFailure(ctx, userID)
		return "", nil, domain.ErrInvalidCredentials
	}
	s.resetFailures(ctx, userID)

	token, err := s.tokens.Issue(user.UserID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.UserID).Str("role", user.Role.String()).Msg("login succeeded")
	return token, user, nil
}

// ChangePassword replaces the password of user after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return domain.NewValidationError("old and new passwords are required")
	}
	if user.IsAdmin() {
		return domain.ErrAdminImmutable
	}
	if !s.passwordMatches(user, oldPassword) {
		return domain.ErrIncorrectPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.UserID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info().Str("user_id", user.UserID).Msg("password changed")
	return nil
}

// Authenticate verifies token and loads the user it was issued to. A user
// deleted after issuance invalidates the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrSubjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user.Role != claims.Role {
		return nil, domain.ErrTokenInvalid
	}
	return user, nil
}

func (s *AuthService) passwordMatches(user *domain.User, password string) bool {
	if s.hasher.Verify(password, user.PasswordHash) {
		return true
	}
	if s.legacy.Matches(user.Role, password) {
		s.log.Warn().Str("user_id", user.UserID).Msg("legacy default password accepted")
		return true
	}
	return false
}

func (s *AuthService) locked(ctx context.Context, userID string) bool {
	if s.throttle == nil {
		return false
	}
	locked, err := s.throttle.Locked(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("login throttle unavailable, allowing attempt")
		return false
	}
	return locked
}

func (s *AuthService) recordFailure(ctx context.Context, userID string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to record login failure")
	}
}

func (s *AuthService) resetFailures(ctx context.Context, userID string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to reset login failures")
	}
}
