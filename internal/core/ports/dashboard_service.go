package ports

import (
	"context"
	"time"

	"github.com/gctu/attendance-api/internal/core/domain"
)

// StudentCourse is a course a student has attendance for. Schedule and Room
// stay empty until a timetable source exists.
type StudentCourse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lecturer string `json:"lecturer"`
	Schedule string `json:"schedule"`
	Room     string `json:"room"`
}

// TodayAttendance is a single mark recorded today.
type TodayAttendance struct {
	Course string `json:"course"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

// AttendanceStats holds present-rate percentages.
type AttendanceStats struct {
	Monthly []int `json:"monthly"`
	Courses []int `json:"courses"`
}

// StudentDashboard is the payload of GET /student/dashboard.
type StudentDashboard struct {
	Courses         []StudentCourse   `json:"courses"`
	TodayAttendance []TodayAttendance `json:"today_attendance"`
	AttendanceStats AttendanceStats   `json:"attendance_stats"`
}

// StudentAttendanceItem is one row of GET /student/attendance.
type StudentAttendanceItem struct {
	Date   string `json:"date"`
	Course string `json:"course"`
	Status string `json:"status"`
}

// LecturerStats aggregates a lecturer's ledger.
type LecturerStats struct {
	TotalStudents int `json:"total_students"`
	TotalPresent  int `json:"total_present"`
	TotalAbsent   int `json:"total_absent"`
	TotalCourses  int `json:"total_courses"`
}

// LecturerCourse is the per-course summary on the lecturer dashboard.
type LecturerCourse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Students       int    `json:"students"`
	AttendanceRate int    `json:"attendance_rate"`
}

// AbsenceRequest is a student's request to be excused.
type AbsenceRequest struct {
	StudentName string `json:"student_name"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

// LecturerStudent is a student seen in a lecturer's classes.
type LecturerStudent struct {
	Name           string `json:"name"`
	ID             string `json:"id"`
	Email          string `json:"email"`
	Course         string `json:"course"`
	AttendanceRate int    `json:"attendance_rate"`
}

// LecturerDashboard is the payload of GET /lecturer/dashboard.
type LecturerDashboard struct {
	Stats           LecturerStats     `json:"stats"`
	Courses         []LecturerCourse  `json:"courses"`
	AbsenceRequests []AbsenceRequest  `json:"absence_requests"`
	Students        []LecturerStudent `json:"students"`
}

// LecturerAttendanceItem is one row of GET /lecturer/attendance.
type LecturerAttendanceItem struct {
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Status      string `json:"status"`
	Time        string `json:"time"`
	Method      string `json:"method"`
	Date        string `json:"date"`
	Course      string `json:"course"`
}

// RecordAttendanceInput is a lecturer's mark for one student.
type RecordAttendanceInput struct {
	StudentID  string
	CourseID   string
	CourseName string
	Status     string
	Method     string
	// RecordedAt defaults to now when zero.
	RecordedAt time.Time
}

type DashboardService interface {
	StudentDashboard(ctx context.Context, student *domain.User) (*StudentDashboard, error)
	StudentAttendance(ctx context.Context, student *domain.User) ([]StudentAttendanceItem, error)
	LecturerDashboard(ctx context.Context, lecturer *domain.User) (*LecturerDashboard, error)
	LecturerAttendance(ctx context.Context, lecturer *domain.User) ([]LecturerAttendanceItem, error)
}

type AttendanceService interface {
	Record(ctx context.Context, lecturer *domain.User, input RecordAttendanceInput) (*domain.AttendanceRecord, error)
}
