package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gctu/attendance-api/internal/api/middleware"
	"github.com/gctu/attendance-api/internal/core/domain"
)

// currentUser returns the user resolved by the auth gate, or ErrTokenMissing
// when the route was mounted without it.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrTokenMissing
	}
	return user, nil
}

// requireRole is the in-handler role check. Routes also carry
// middleware.RequireRole; this keeps handlers safe when mounted elsewhere.
func requireRole(c echo.Context, roles ...domain.Role) (*domain.User, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if user.Role == r {
			return user, nil
		}
	}
	return nil, domain.ErrForbidden
}

// successResponse is the envelope for replies that carry only a message.
type successResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message"`
}

const statusSuccess = "success"
