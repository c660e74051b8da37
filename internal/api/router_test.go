package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gctu/attendance-api/internal/core/service"
	"github.com/gctu/attendance-api/internal/infrastructure/db/memory"
	"github.com/gctu/attendance-api/internal/infrastructure/queue"
)

const testAdminPassword = "root-pass"

// newTestRouter wires the full stack over the in-memory stores.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	users := memory.NewUserRepository()
	ledger := memory.NewAttendanceRepository()
	hasher := service.NewBcryptHasher(bcrypt.MinCost)

	adminHash, err := hasher.Hash(testAdminPassword)
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	dir := service.NewDirectory(users, adminHash)
	tokens := service.NewJWTManager("router-test-secret", service.DefaultTokenTTL)
	userSvc := service.NewUserService(dir, users, hasher, false, log)

	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Auth:       service.NewAuthService(dir, users, hasher, tokens, nil, false, log),
		Users:      userSvc,
		Dashboards: service.NewDashboardService(ledger, log),
		Attendance: service.NewAttendanceService(dir, ledger, log),
		Importer:   queue.NewImportDispatcher(2, userSvc, log),
		Log:        log,
		Registerer: reg,
		Gatherer:   reg,
	})
}

func do(t *testing.T, e *echo.Echo, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: invalid json %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code, resp
}

func login(t *testing.T, e *echo.Echo, userID, password string) string {
	t.Helper()
	code, resp := do(t, e, http.MethodPost, "/login", "", `{"user_id":"`+userID+`","password":"`+password+`"}`)
	if code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %v", userID, code, resp)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("login %s: empty token", userID)
	}
	return token
}

func expectError(t *testing.T, code int, resp map[string]any, wantCode int, wantMsg string) {
	t.Helper()
	if code != wantCode {
		t.Fatalf("expected %d, got %d: %v", wantCode, code, resp)
	}
	if resp["status"] != "error" || resp["message"] != wantMsg {
		t.Fatalf("expected error %q, got %v", wantMsg, resp)
	}
}

func TestRouter_PasswordLifecycle(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin", testAdminPassword)

	code, resp := do(t, e, http.MethodPost, "/register", admin,
		`{"user_id":"S100","name":"Ama Mensah","email":"ama@gctu.edu.gh","role":"student","password":"pw1"}`)
	if code != http.StatusOK || resp["status"] != "success" {
		t.Fatalf("register: %d %v", code, resp)
	}

	student := login(t, e, "S100", "pw1")

	code, resp = do(t, e, http.MethodPost, "/login", "", `{"user_id":"S100","password":"wrong"}`)
	expectError(t, code, resp, http.StatusUnauthorized, "Invalid credentials")

	code, resp = do(t, e, http.MethodPost, "/change_password", student, `{"old_password":"pw1","new_password":"pw2"}`)
	if code != http.StatusOK || resp["message"] != "Password changed successfully" {
		t.Fatalf("change password: %d %v", code, resp)
	}

	code, resp = do(t, e, http.MethodPost, "/login", "", `{"user_id":"S100","password":"pw1"}`)
	expectError(t, code, resp, http.StatusUnauthorized, "Invalid credentials")

	login(t, e, "S100", "pw2")
}

func TestRouter_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	e := newTestRouter(t)

	code, resp := do(t, e, http.MethodPost, "/login", "", `{"user_id":"ghost","password":"pw"}`)
	expectError(t, code, resp, http.StatusUnauthorized, "Invalid credentials")
}

func TestRouter_AdminRoutesForbidNonAdmins(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin", testAdminPassword)

	do(t, e, http.MethodPost, "/register", admin,
		`{"user_id":"L100","name":"Dr. Owusu","email":"owusu@gctu.edu.gh","role":"lecturer","password":"pw1"}`)
	lecturer := login(t, e, "L100", "pw1")

	for _, path := range []string{"/users", "/users/by-role"} {
		code, resp := do(t, e, http.MethodGet, path, lecturer, "")
		expectError(t, code, resp, http.StatusForbidden, "Unauthorized")
	}

	code, resp := do(t, e, http.MethodGet, "/users", admin, "")
	if code != http.StatusOK {
		t.Fatalf("admin list users: %d %v", code, resp)
	}
	if users, _ := resp["users"].([]any); len(users) != 2 {
		t.Fatalf("expected admin and lecturer, got %v", resp["users"])
	}
}

func TestRouter_TokenErrors(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin", testAdminPassword)
	do(t, e, http.MethodPost, "/register", admin,
		`{"user_id":"S100","name":"Ama","email":"ama@gctu.edu.gh","role":"student","password":"pw1"}`)
	student := login(t, e, "S100", "pw1")

	t.Run("missing", func(t *testing.T) {
		code, resp := do(t, e, http.MethodGet, "/me", "", "")
		expectError(t, code, resp, http.StatusUnauthorized, "Token is missing")
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(student, ".")
		payload, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		forged := strings.Replace(string(payload), `"role":"student"`, `"role":"admin"`, 1)
		if forged == string(payload) {
			t.Fatalf("role claim not found in %s", payload)
		}
		parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

		code, resp := do(t, e, http.MethodGet, "/users", strings.Join(parts, "."), "")
		expectError(t, code, resp, http.StatusUnauthorized, "Token is invalid")
	})

	t.Run("deleted subject", func(t *testing.T) {
		code, _ := do(t, e, http.MethodDelete, "/users/S100", admin, "")
		if code != http.StatusOK {
			t.Fatalf("delete: expected 200, got %d", code)
		}
		code, resp := do(t, e, http.MethodGet, "/me", student, "")
		expectError(t, code, resp, http.StatusUnauthorized, "User not found")
	})
}

func TestRouter_AdminCannotBeDeleted(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin", testAdminPassword)

	code, resp := do(t, e, http.MethodDelete, "/users/admin", admin, "")
	expectError(t, code, resp, http.StatusBadRequest, "Admin account cannot be modified")
}

func TestRouter_AttendanceFlow(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin", testAdminPassword)

	code, resp := do(t, e, http.MethodPost, "/users/import", admin, `[
		{"user_id":"S100","name":"Ama Mensah","email":"ama@gctu.edu.gh","role":"student","password":"pw1"},
		{"user_id":"L100","name":"Dr. Owusu","email":"owusu@gctu.edu.gh","role":"lecturer","password":"pw1","courses":["CSC201"]},
		{"user_id":"S100","name":"Duplicate","email":"dup@gctu.edu.gh","role":"student"}
	]`)
	if code != http.StatusOK || resp["imported"] != float64(2) {
		t.Fatalf("import: %d %v", code, resp)
	}
	if errs, _ := resp["errors"].([]any); len(errs) != 1 {
		t.Fatalf("expected one import error, got %v", resp["errors"])
	}

	lecturer := login(t, e, "L100", "pw1")
	student := login(t, e, "S100", "pw1")

	code, resp = do(t, e, http.MethodPost, "/lecturer/attendance", lecturer,
		`{"student_id":"S100","course_id":"CSC201","course_name":"Data Structures","status":"present"}`)
	if code != http.StatusCreated {
		t.Fatalf("record attendance: %d %v", code, resp)
	}

	code, resp = do(t, e, http.MethodGet, "/student/attendance", student, "")
	if code != http.StatusOK {
		t.Fatalf("student attendance: %d %v", code, resp)
	}
	items, _ := resp["attendance"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["status"] != "present" {
		t.Fatalf("unexpected attendance: %v", resp["attendance"])
	}

	code, resp = do(t, e, http.MethodGet, "/lecturer/dashboard", student, "")
	expectError(t, code, resp, http.StatusForbidden, "Unauthorized")

	code, resp = do(t, e, http.MethodGet, "/lecturer/dashboard", lecturer, "")
	if code != http.StatusOK {
		t.Fatalf("lecturer dashboard: %d %v", code, resp)
	}
}

func TestRouter_Operations(t *testing.T) {
	e := newTestRouter(t)

	if code, resp := do(t, e, http.MethodGet, "/health", "", ""); code != http.StatusOK || resp["status"] != "ok" {
		t.Fatalf("health: %d %v", code, resp)
	}
	if code, _ := do(t, e, http.MethodGet, "/health/ready", "", ""); code != http.StatusOK {
		t.Fatalf("ready: %d", code)
	}

	do(t, e, http.MethodPost, "/login", "", `{"user_id":"ghost","password":"pw"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "attendance_requests_total") {
		t.Fatalf("expected request metrics in output")
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	code, resp := do(t, e, http.MethodGet, "/nope", "", "")
	if code != http.StatusNotFound || resp["status"] != "error" {
		t.Fatalf("expected 404 error envelope, got %d %v", code, resp)
	}
}
