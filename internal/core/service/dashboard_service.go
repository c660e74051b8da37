package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

const (
	dateLayout    = "2006-01-02"
	clockLayout   = "03:04 PM"
	monthlyWindow = 7
)

// DashboardService builds the per-role dashboard payloads from the
// attendance ledger.
type DashboardService struct {
	ledger ports.AttendanceRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewDashboardService(ledger ports.AttendanceRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{ledger: ledger, log: log, now: time.Now}
}

func (s *DashboardService) StudentDashboard(ctx context.Context, student *domain.User) (*ports.StudentDashboard, error) {
	records, err := s.ledger.ListByStudent(ctx, student.UserID)
	if err != nil {
		return nil, s.ledgerError("student dashboard", student.UserID, err)
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)

	dash := &ports.StudentDashboard{
		Courses:         []ports.StudentCourse{},
		TodayAttendance: []ports.TodayAttendance{},
		AttendanceStats: ports.AttendanceStats{Monthly: make([]int, monthlyWindow), Courses: []int{}},
	}

	courseIdx := make(map[string]int)
	var perCourse []tally
	var monthly [monthlyWindow]tally

	for _, r := range records {
		i, ok := courseIdx[r.CourseID]
		if !ok {
			i = len(dash.Courses)
			courseIdx[r.CourseID] = i
			dash.Courses = append(dash.Courses, ports.StudentCourse{ID: r.CourseID, Name: r.CourseName, Lecturer: r.Lecturer})
			perCourse = append(perCourse, tally{})
		}
		perCourse[i].add(r.Status)

		at := r.RecordedAt.UTC()
		if at.Format(dateLayout) == today {
			dash.TodayAttendance = append(dash.TodayAttendance, ports.TodayAttendance{
				Course: r.CourseName,
				Status: string(r.Status),
				Time:   at.Format(clockLayout),
			})
		}
		if m := monthsBetween(at, now); m >= 0 && m < monthlyWindow {
			monthly[monthlyWindow-1-m].add(r.Status)
		}
	}

	for i := range monthly {
		dash.AttendanceStats.Monthly[i] = monthly[i].rate()
	}
	for _, t := range perCourse {
		dash.AttendanceStats.Courses = append(dash.AttendanceStats.Courses, t.rate())
	}
	return dash, nil
}

func (s *DashboardService) StudentAttendance(ctx context.Context, student *domain.User) ([]ports.StudentAttendanceItem, error) {
	records, err := s.ledger.ListByStudent(ctx, student.UserID)
	if err != nil {
		return nil, s.ledgerError("student attendance", student.UserID, err)
	}

	items := make([]ports.StudentAttendanceItem, 0, len(records))
	for _, r := range records {
		items = append(items, ports.StudentAttendanceItem{
			Date:   r.RecordedAt.UTC().Format(dateLayout),
			Course: r.CourseName,
			Status: string(r.Status),
		})
	}
	return items, nil
}

func (s *DashboardService) LecturerDashboard(ctx context.Context, lecturer *domain.User) (*ports.LecturerDashboard, error) {
	records, err := s.ledger.ListByLecturer(ctx, lecturer.UserID)
	if err != nil {
		return nil, s.ledgerError("lecturer dashboard", lecturer.UserID, err)
	}

	dash := &ports.LecturerDashboard{
		Courses:         []ports.LecturerCourse{},
		AbsenceRequests: []ports.AbsenceRequest{},
		Students:        []ports.LecturerStudent{},
	}

	type courseAgg struct {
		tally
		students map[string]struct{}
	}
	// Courses are keyed by course id; the ledger supplies display names and
	// profile courses without marks fall back to their id.
	courseIdx := make(map[string]int)
	var courses []*courseAgg
	addCourse := func(id, name string) *courseAgg {
		if i, ok := courseIdx[id]; ok {
			return courses[i]
		}
		if name == "" {
			name = id
		}
		courseIdx[id] = len(courses)
		dash.Courses = append(dash.Courses, ports.LecturerCourse{ID: id, Name: name})
		agg := &courseAgg{students: make(map[string]struct{})}
		courses = append(courses, agg)
		return agg
	}

	studentIdx := make(map[string]int)
	var studentTallies []tally

	for _, r := range records {
		c := addCourse(r.CourseID, r.CourseName)
		c.add(r.Status)
		c.students[r.StudentID] = struct{}{}

		i, ok := studentIdx[r.StudentID]
		if !ok {
			i = len(dash.Students)
			studentIdx[r.StudentID] = i
			// records are newest first, so the first course seen is the latest.
			dash.Students = append(dash.Students, ports.LecturerStudent{
				Name:   r.StudentName,
				ID:     r.StudentID,
				Email:  r.StudentEmail,
				Course: r.CourseName,
			})
			studentTallies = append(studentTallies, tally{})
		}
		studentTallies[i].add(r.Status)

		if r.Status.Attended() {
			dash.Stats.TotalPresent++
		} else {
			dash.Stats.TotalAbsent++
		}
	}
	for _, id := range lecturer.Courses {
		addCourse(id, "")
	}

	for i, c := range courses {
		dash.Courses[i].Students = len(c.students)
		dash.Courses[i].AttendanceRate = c.rate()
	}
	for i, t := range studentTallies {
		dash.Students[i].AttendanceRate = t.rate()
	}
	dash.Stats.TotalStudents = len(dash.Students)
	dash.Stats.TotalCourses = len(dash.Courses)
	return dash, nil
}

func (s *DashboardService) LecturerAttendance(ctx context.Context, lecturer *domain.User) ([]ports.LecturerAttendanceItem, error) {
	records, err := s.ledger.ListByLecturer(ctx, lecturer.UserID)
	if err != nil {
		return nil, s.ledgerError("lecturer attendance", lecturer.UserID, err)
	}

	items := make([]ports.LecturerAttendanceItem, 0, len(records))
	for _, r := range records {
		at := r.RecordedAt.UTC()
		item := ports.LecturerAttendanceItem{
			StudentName: r.StudentName,
			StudentID:   r.StudentID,
			Status:      string(r.Status),
			Time:        at.Format(clockLayout),
			Method:      string(r.Method),
			Date:        at.Format(dateLayout),
			Course:      r.CourseName,
		}
		if r.Status == domain.AttendanceAbsent {
			item.Time, item.Method = "-", "-"
		}
		items = append(items, item)
	}
	return items, nil
}

// ledgerError logs a failed ledger read and wraps it for the caller.
func (s *DashboardService) ledgerError(op, userID string, err error) error {
	s.log.Error().Err(err).Str("op", op).Str("user_id", userID).Msg("attendance ledger read failed")
	return fmt.Errorf("%s: %w", op, err)
}

// tally counts attended vs total marks.
type tally struct {
	attended, total int
}

func (t *tally) add(status domain.AttendanceStatus) {
	t.total++
	if status.Attended() {
		t.attended++
	}
}

// rate is the attended share as a whole percentage; 0 when there are no marks.
func (t tally) rate() int {
	if t.total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(t.attended) / float64(t.total)))
}

// monthsBetween counts calendar months from then to now (0 = same month).
func monthsBetween(then, now time.Time) int {
	return (now.Year()-then.Year())*12 + int(now.Month()) - int(then.Month())
}
