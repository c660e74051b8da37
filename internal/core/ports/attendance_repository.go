package ports

import (
	"context"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// AttendanceRepository is the attendance ledger. Listings are newest first.
type AttendanceRepository interface {
	Record(ctx context.Context, record *domain.AttendanceRecord) error
	ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendanceRecord, error)
	ListByLecturer(ctx context.Context, lecturerID string) ([]*domain.AttendanceRecord, error)
}
