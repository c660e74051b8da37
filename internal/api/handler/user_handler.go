package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gctu/attendance-api/internal/api/metrics"
	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// maxImportRecords caps a single bulk import request.
const maxImportRecords = 1000

// BatchImporter runs a bulk import to completion.
type BatchImporter interface {
	Run(ctx context.Context, records []ports.RegisterUserInput) ports.ImportResult
}

// UserHandler serves the admin-only user management endpoints.
type UserHandler struct {
	users    ports.UserService
	importer BatchImporter
}

func NewUserHandler(users ports.UserService, importer BatchImporter) *UserHandler {
	return &UserHandler{users: users, importer: importer}
}

type userRequest struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Password   string   `json:"password"`
	Level      int      `json:"level,omitempty"`
	Program    string   `json:"program,omitempty"`
	Department string   `json:"department,omitempty"`
	Courses    []string `json:"courses,omitempty"`
	Levels     []int    `json:"levels,omitempty"`
}

func (r userRequest) toInput() ports.RegisterUserInput {
	return ports.RegisterUserInput{
		UserID:     r.UserID,
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Password:   r.Password,
		Level:      r.Level,
		Program:    r.Program,
		Department: r.Department,
		Courses:    r.Courses,
		Levels:     r.Levels,
	}
}

type listUsersResponse struct {
	Status string         `json:"status" example:"success"`
	Users  []*domain.User `json:"users"`
}

type usersByRoleResponse struct {
	Status      string             `json:"status" example:"success"`
	UsersByRole *ports.UsersByRole `json:"users_by_role"`
	Stats       *ports.RoleStats   `json:"stats"`
}

type importResponse struct {
	Status   string   `json:"status" example:"success"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// Register creates a user.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("No data provided")
	}

	if _, err := h.users.Register(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Status: statusSuccess, Message: "User created successfully"})
}

// List returns every user, administrator first.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Status: statusSuccess, Users: users})
}

// ListByRole groups users by role with per-role counts.
//
// @Summary      List users by role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersByRoleResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/by-role [get]
func (h *UserHandler) ListByRole(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	grouped, stats, err := h.users.ListByRole(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersByRoleResponse{Status: statusSuccess, UsersByRole: grouped, Stats: stats})
}

// Delete removes a user. The administrator cannot be deleted.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  successResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /users/{user_id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Status: statusSuccess, Message: "User deleted successfully"})
}

// Import registers a batch of users. Failed records are reported without
// aborting the batch.
//
// @Summary      Bulk import users
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []userRequest  true  "Users to import"
// @Success      200   {object}  importResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/import [post]
func (h *UserHandler) Import(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req []userRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("expected a JSON array of users")
	}
	if len(req) == 0 {
		return domain.NewValidationError("No data provided")
	}
	if len(req) > maxImportRecords {
		return domain.NewValidationError(fmt.Sprintf("at most %d users per import", maxImportRecords))
	}

	records := make([]ports.RegisterUserInput, 0, len(req))
	for _, r := range req {
		records = append(records, r.toInput())
	}

	res := h.importer.Run(c.Request().Context(), records)
	metrics.UsersImportedTotal.WithLabelValues("imported").Add(float64(res.Imported))
	metrics.UsersImportedTotal.WithLabelValues("failed").Add(float64(len(res.Errors)))

	return c.JSON(http.StatusOK, importResponse{Status: statusSuccess, Imported: res.Imported, Errors: res.Errors})
}
