package service

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// Directory is the read side of the credential store with the administrator
// folded in. The admin is synthesized from configuration, never stored.
type Directory struct {
	repo  ports.UserRepository
	admin domain.User
}

// NewDirectory wraps repo. adminHash may be empty, in which case the admin
// identity exists but no stored password will ever match it.
func NewDirectory(repo ports.UserRepository, adminHash string) *Directory {
	return &Directory{
		repo: repo,
		admin: domain.User{
			UserID:       domain.AdminUserID,
			Name:         "System Administrator",
			Email:        "admin",
			Role:         domain.RoleAdmin,
			PasswordHash: adminHash,
		},
	}
}

// Admin returns a copy of the synthesized administrator.
func (d *Directory) Admin() *domain.User {
	admin := d.admin
	return &admin
}

func (d *Directory) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	if userID == domain.AdminUserID {
		return d.Admin(), nil
	}
	return d.repo.FindByID(ctx, userID)
}

// List returns the administrator followed by every stored user.
func (d *Directory) List(ctx context.Context) ([]*domain.User, error) {
	stored, err := d.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return append([]*domain.User{d.Admin()}, stored...), nil
}

func (d *Directory) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if role == domain.RoleAdmin {
		return []*domain.User{d.Admin()}, nil
	}
	return d.repo.ListByRole(ctx, role)
}
