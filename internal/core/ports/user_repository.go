package ports

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// UserRepository is the credential store. Users are partitioned by role;
// user_id is unique across every partition.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// Create returns domain.ErrUserExists when the id is taken in any partition.
	Create(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	// Delete returns domain.ErrUserNotFound when nothing was removed.
	Delete(ctx context.Context, userID string) error
}
