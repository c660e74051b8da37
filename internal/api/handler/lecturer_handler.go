package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gctu/attendance-api/internal/api/metrics"
	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// LecturerHandler serves the lecturer dashboard and mark-taking endpoints.
type LecturerHandler struct {
	dashboards ports.DashboardService
	attendance ports.AttendanceService
}

func NewLecturerHandler(dashboards ports.DashboardService, attendance ports.AttendanceService) *LecturerHandler {
	return &LecturerHandler{dashboards: dashboards, attendance: attendance}
}

type lecturerDashboardResponse struct {
	Status string                   `json:"status" example:"success"`
	Data   *ports.LecturerDashboard `json:"data"`
}

type lecturerAttendanceResponse struct {
	Status     string                         `json:"status" example:"success"`
	Attendance []ports.LecturerAttendanceItem `json:"attendance"`
}

type recordAttendanceRequest struct {
	StudentID  string     `json:"student_id" validate:"required"`
	CourseID   string     `json:"course_id" validate:"required"`
	CourseName string     `json:"course_name"`
	Status     string     `json:"status" validate:"omitempty,oneof=present absent late"`
	Method     string     `json:"method" validate:"omitempty,oneof=manual qr_code"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

type recordAttendanceResponse struct {
	Status string                   `json:"status" example:"success"`
	Record *domain.AttendanceRecord `json:"record"`
}

// Dashboard
//
// @Summary      Lecturer dashboard
// @Tags         lecturer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  lecturerDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /lecturer/dashboard [get]
func (h *LecturerHandler) Dashboard(c echo.Context) error {
	user, err := requireRole(c, domain.RoleLecturer)
	if err != nil {
		return err
	}

	dash, err := h.dashboards.LecturerDashboard(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lecturerDashboardResponse{Status: statusSuccess, Data: dash})
}

// Attendance
//
// @Summary      Marks taken by the lecturer
// @Tags         lecturer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  lecturerAttendanceResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /lecturer/attendance [get]
func (h *LecturerHandler) Attendance(c echo.Context) error {
	user, err := requireRole(c, domain.RoleLecturer)
	if err != nil {
		return err
	}

	items, err := h.dashboards.LecturerAttendance(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lecturerAttendanceResponse{Status: statusSuccess, Attendance: items})
}

// RecordAttendance stores a mark for one student.
//
// @Summary      Record attendance
// @Tags         lecturer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordAttendanceRequest  true  "Attendance mark"
// @Success      201   {object}  recordAttendanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /lecturer/attendance [post]
func (h *LecturerHandler) RecordAttendance(c echo.Context) error {
	user, err := requireRole(c, domain.RoleLecturer)
	if err != nil {
		return err
	}

	var req recordAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.RecordAttendanceInput{
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Status:     req.Status,
		Method:     req.Method,
	}
	if req.RecordedAt != nil {
		in.RecordedAt = *req.RecordedAt
	}

	record, err := h.attendance.Record(c.Request().Context(), user, in)
	if err != nil {
		return err
	}
	metrics.AttendanceRecordedTotal.WithLabelValues(string(record.Status)).Inc()

	return c.JSON(http.StatusCreated, recordAttendanceResponse{Status: statusSuccess, Record: record})
}
