package domain

import "errors"

// Authentication failures. Callers surface a different message per kind.
var (
	ErrTokenMissing       = errors.New("token is missing")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("old password is incorrect")
	ErrSubjectNotFound    = errors.New("user no longer exists")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

var ErrForbidden = errors.New("access forbidden")

// Credential store failures.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrAdminImmutable   = errors.New("admin account cannot be modified")
	ErrStoreTimeout     = errors.New("store timed out")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchemaVersion    = errors.New("schema version is newer than this build")
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError describes malformed or missing input.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
