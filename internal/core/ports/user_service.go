package ports

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// RegisterUserInput carries the fields accepted by registration and import.
type RegisterUserInput struct {
	UserID     string
	Name       string
	Email      string
	Role       string
	Password   string
	Level      int
	Program    string
	Department string
	Courses    []string
	Levels     []int
}

// RoleStats summarises the user population per role.
type RoleStats struct {
	TotalStudents  int `json:"total_students"`
	TotalLecturers int `json:"total_lecturers"`
	TotalExaminers int `json:"total_examiners"`
	TotalAdmins    int `json:"total_admins"`
	TotalUsers     int `json:"total_users"`
}

// UsersByRole groups users the way the admin console expects them.
type UsersByRole struct {
	Students  []*domain.User `json:"students"`
	Lecturers []*domain.User `json:"lecturers"`
	Examiners []*domain.User `json:"examiners"`
	Admins    []*domain.User `json:"admins"`
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int
	Errors   []string
}

type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context) (*UsersByRole, *RoleStats, error)
	Delete(ctx context.Context, userID string) error
	ImportOne(ctx context.Context, input RegisterUserInput) (*domain.User, error)
}
