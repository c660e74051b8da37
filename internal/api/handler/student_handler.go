package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// StudentHandler serves the student dashboard endpoints.
type StudentHandler struct {
	dashboards ports.DashboardService
}

func NewStudentHandler(dashboards ports.DashboardService) *StudentHandler {
	return &StudentHandler{dashboards: dashboards}
}

type studentDashboardResponse struct {
	Status string                  `json:"status" example:"success"`
	Data   *ports.StudentDashboard `json:"data"`
}

type studentAttendanceResponse struct {
	Status     string                        `json:"status" example:"success"`
	Attendance []ports.StudentAttendanceItem `json:"attendance"`
}

// Dashboard
//
// @Summary      Student dashboard
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  studentDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /student/dashboard [get]
func (h *StudentHandler) Dashboard(c echo.Context) error {
	user, err := requireRole(c, domain.RoleStudent)
	if err != nil {
		return err
	}

	dash, err := h.dashboards.StudentDashboard(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studentDashboardResponse{Status: statusSuccess, Data: dash})
}

// Attendance
//
// @Summary      Student attendance history
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  studentAttendanceResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /student/attendance [get]
func (h *StudentHandler) Attendance(c echo.Context) error {
	user, err := requireRole(c, domain.RoleStudent)
	if err != nil {
		return err
	}

	items, err := h.dashboards.StudentAttendance(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studentAttendanceResponse{Status: statusSuccess, Attendance: items})
}
