package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gctu/attendance-api/internal/api/middleware"
	"github.com/gctu/attendance-api/internal/core/domain"
)

// newContext builds an echo context with the validator installed and, when
// user is non-nil, the auth gate's user already resolved.
func newContext(method, target string, body io.Reader, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

var (
	adminUser    = &domain.User{UserID: domain.AdminUserID, Name: "System Administrator", Role: domain.RoleAdmin}
	studentUser  = &domain.User{UserID: "S100", Name: "Ama Mensah", Role: domain.RoleStudent}
	lecturerUser = &domain.User{UserID: "L100", Name: "Dr. Owusu", Role: domain.RoleLecturer}
)
