package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// maxClockSkew is how far ahead of the server clock a supplied recorded_at may be.
const maxClockSkew = 5 * time.Minute

// AttendanceService records marks into the attendance ledger.
type AttendanceService struct {
	users  *Directory
	ledger ports.AttendanceRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewAttendanceService(users *Directory, ledger ports.AttendanceRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{users: users, ledger: ledger, log: log, now: time.Now}
}

// Record stores one mark taken by lecturer for a registered student.
func (s *AttendanceService) Record(ctx context.Context, lecturer *domain.User, in ports.RecordAttendanceInput) (*domain.AttendanceRecord, error) {
	in.StudentID = strings.TrimSpace(in.StudentID)
	in.CourseID = strings.TrimSpace(in.CourseID)
	in.CourseName = strings.TrimSpace(in.CourseName)
	if in.StudentID == "" || in.CourseID == "" {
		return nil, domain.NewValidationError("student_id and course_id are required")
	}
	if in.CourseName == "" {
		in.CourseName = in.CourseID
	}

	status, err := parseAttendanceStatus(in.Status)
	if err != nil {
		return nil, err
	}
	method, err := parseAttendanceMethod(in.Method)
	if err != nil {
		return nil, err
	}

	student, err := s.users.FindByID(ctx, in.StudentID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.NewValidationError("student_id does not name a registered student")
	}
	if err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.NewValidationError("student_id does not name a registered student")
	}

	now := s.now()
	at := in.RecordedAt
	if at.IsZero() {
		at = now
	}
	if at.After(now.Add(maxClockSkew)) {
		return nil, domain.NewValidationError("recorded_at cannot be in the future")
	}

	record := &domain.AttendanceRecord{
		StudentID:    student.UserID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		CourseID:     in.CourseID,
		CourseName:   in.CourseName,
		LecturerID:   lecturer.UserID,
		Lecturer:     lecturer.Name,
		Status:       status,
		Method:       method,
		RecordedAt:   at.UTC(),
	}
	if err := s.ledger.Record(ctx, record); err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	s.log.Info().
		Str("student_id", record.StudentID).
		Str("course_id", record.CourseID).
		Str("lecturer_id", record.LecturerID).
		Str("status", string(status)).
		Msg("attendance recorded")
	return record, nil
}

func parseAttendanceStatus(s string) (domain.AttendanceStatus, error) {
	switch st := domain.AttendanceStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return domain.AttendancePresent, nil
	case domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceLate:
		return st, nil
	}
	return "", domain.NewValidationError("status must be one of: present absent late")
}

func parseAttendanceMethod(s string) (domain.AttendanceMethod, error) {
	switch m := domain.AttendanceMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return domain.MethodManual, nil
	case domain.MethodManual, domain.MethodQRCode:
		return m, nil
	}
	return "", domain.NewValidationError("method must be one of: manual qr_code")
}
