package ports

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, userID, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error
	// Authenticate verifies a token and resolves the user it names.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
