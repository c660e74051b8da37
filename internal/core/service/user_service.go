package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

const (
	defaultStudentLevel   = 100
	defaultProgram        = "General"
	defaultDepartment     = "General"
	defaultLecturerLevels = 100
)

// UserService implements the admin-only user management use cases.
type UserService struct {
	users  *Directory
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	legacy LegacyPasswords
	log    zerolog.Logger
}

func NewUserService(users *Directory, repo ports.UserRepository, hasher ports.PasswordHasher, legacy LegacyPasswords, log zerolog.Logger) *UserService {
	return &UserService{users: users, repo: repo, hasher: hasher, legacy: legacy, log: log}
}

// Register validates input, hashes the password and stores a new user.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	input = trimInput(input)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"user_id", input.UserID},
		{"name", input.Name},
		{"email", input.Email},
		{"role", input.Role},
		{"password", input.Password},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		return nil, domain.NewValidationError("admin accounts cannot be registered")
	}
	if input.UserID == domain.AdminUserID {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:       input.UserID,
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyRoleProfile(user, input)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register %s: %w", input.UserID, err)
	}

	s.log.Info().Str("user_id", user.UserID).Str("role", role.String()).Msg("user registered")
	return user, nil
}

// ImportOne registers a single bulk-import record. A missing role defaults to
// student; a missing password falls back to the legacy default when enabled.
func (s *UserService) ImportOne(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	input = trimInput(input)
	if input.Role == "" {
		input.Role = domain.RoleStudent.String()
	}
	if input.Password == "" {
		if def, ok := s.legacy.For(domain.Role(input.Role)); ok {
			input.Password = def
		}
	}
	return s.Register(ctx, input)
}

// List returns every user, administrator first.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListByRole groups users by role and counts each group.
func (s *UserService) ListByRole(ctx context.Context) (*ports.UsersByRole, *ports.RoleStats, error) {
	grouped := &ports.UsersByRole{}
	for _, role := range domain.Roles() {
		users, err := s.users.ListByRole(ctx, role)
		if err != nil {
			return nil, nil, fmt.Errorf("list %s users: %w", role, err)
		}
		if users == nil {
			users = []*domain.User{}
		}
		switch role {
		case domain.RoleAdmin:
			grouped.Admins = users
		case domain.RoleStudent:
			grouped.Students = users
		case domain.RoleLecturer:
			grouped.Lecturers = users
		case domain.RoleExaminer:
			grouped.Examiners = users
		}
	}

	stats := &ports.RoleStats{
		TotalStudents:  len(grouped.Students),
		TotalLecturers: len(grouped.Lecturers),
		TotalExaminers: len(grouped.Examiners),
		TotalAdmins:    len(grouped.Admins),
	}
	stats.TotalUsers = stats.TotalStudents + stats.TotalLecturers + stats.TotalExaminers + stats.TotalAdmins
	return grouped, stats, nil
}

// Delete removes a stored user. The administrator can never be deleted.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.NewValidationError("user_id is required")
	}
	if userID == domain.AdminUserID {
		return domain.ErrAdminImmutable
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete %s: %w", userID, err)
	}

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

func trimInput(in ports.RegisterUserInput) ports.RegisterUserInput {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	in.Program = strings.TrimSpace(in.Program)
	in.Department = strings.TrimSpace(in.Department)
	return in
}

// applyRoleProfile copies the role-specific attributes, filling defaults.
func applyRoleProfile(user *domain.User, in ports.RegisterUserInput) {
	switch user.Role {
	case domain.RoleStudent:
		user.Level = in.Level
		if user.Level <= 0 {
			user.Level = defaultStudentLevel
		}
		user.Program = in.Program
		if user.Program == "" {
			user.Program = defaultProgram
		}
	case domain.RoleLecturer:
		user.Department = in.Department
		if user.Department == "" {
			user.Department = defaultDepartment
		}
		user.Courses = append([]string(nil), in.Courses...)
		user.Levels = append([]int(nil), in.Levels...)
		if len(user.Levels) == 0 {
			user.Levels = []int{defaultLecturerLevels}
		}
	case domain.RoleExaminer:
		user.Department = in.Department
	case domain.RoleAdmin:
	}
}
