package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, userID string) error
	users      []*domain.User
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) ListByRole(context.Context) (*ports.UsersByRole, *ports.RoleStats, error) {
	return &ports.UsersByRole{
			Students:  []*domain.User{studentUser},
			Lecturers: []*domain.User{},
			Examiners: []*domain.User{},
			Admins:    []*domain.User{adminUser},
		},
		&ports.RoleStats{TotalStudents: 1, TotalAdmins: 1, TotalUsers: 2},
		nil
}

func (s *stubUserService) Delete(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

func (s *stubUserService) ImportOne(context.Context, ports.RegisterUserInput) (*domain.User, error) {
	return nil, errors.New("not used by handlers")
}

type stubImporter struct {
	got []ports.RegisterUserInput
	res ports.ImportResult
}

func (s *stubImporter) Run(_ context.Context, records []ports.RegisterUserInput) ports.ImportResult {
	s.got = records
	return s.res
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
			if in.UserID != "S100" || in.Role != "student" || in.Password != "pw1" || in.Level != 200 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{UserID: in.UserID}, nil
		},
	}
	body := `{"user_id":"S100","name":"Ama","email":"ama@gctu.edu.gh","role":"student","password":"pw1","level":200}`
	c, rec := newContext(http.MethodPost, "/register", strings.NewReader(body), adminUser)

	if err := NewUserHandler(stub, nil).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	if resp := decodeBody(t, rec); resp["status"] != "success" || resp["message"] != "User created successfully" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestUserHandler_Register_NonAdmin(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/register", strings.NewReader(`{}`), lecturerUser)

	if err := NewUserHandler(stub, nil).Register(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_Register_ServiceError(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	c, _ := newContext(http.MethodPost, "/register", strings.NewReader(`{"user_id":"S100"}`), adminUser)

	if err := NewUserHandler(stub, nil).Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{users: []*domain.User{adminUser, studentUser}}
	c, rec := newContext(http.MethodGet, "/users", nil, adminUser)

	if err := NewUserHandler(stub, nil).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	users, ok := decodeBody(t, rec)["users"].([]any)
	if !ok || len(users) != 2 {
		t.Fatalf("expected 2 users, got %v", users)
	}
}

func TestUserHandler_ListByRole(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/users/by-role", nil, adminUser)

	if err := NewUserHandler(&stubUserService{}, nil).ListByRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	grouped, _ := resp["users_by_role"].(map[string]any)
	stats, _ := resp["stats"].(map[string]any)
	if len(grouped["students"].([]any)) != 1 || stats["total_users"] != float64(2) {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var deleted string
	stub := &stubUserService{deleteFn: func(_ context.Context, userID string) error {
		deleted = userID
		return nil
	}}
	c, rec := newContext(http.MethodDelete, "/users/S100", nil, adminUser)
	c.SetParamNames("user_id")
	c.SetParamValues("S100")

	if err := NewUserHandler(stub, nil).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	if deleted != "S100" {
		t.Fatalf("expected S100 to be deleted, got %q", deleted)
	}
}

func TestUserHandler_Delete_Admin(t *testing.T) {
	stub := &stubUserService{deleteFn: func(context.Context, string) error {
		return domain.ErrAdminImmutable
	}}
	c, _ := newContext(http.MethodDelete, "/users/admin", nil, adminUser)
	c.SetParamNames("user_id")
	c.SetParamValues("admin")

	if err := NewUserHandler(stub, nil).Delete(c); !errors.Is(err, domain.ErrAdminImmutable) {
		t.Fatalf("expected ErrAdminImmutable, got %v", err)
	}
}

func TestUserHandler_Import(t *testing.T) {
	imp := &stubImporter{res: ports.ImportResult{Imported: 1, Errors: []string{"record 2 (S2): user already exists"}}}
	body := `[{"user_id":"S1","name":"A","email":"a@x"},{"user_id":"S2","name":"B","email":"b@x","role":"lecturer","courses":["CSC201"]}]`
	c, rec := newContext(http.MethodPost, "/users/import", strings.NewReader(body), adminUser)

	if err := NewUserHandler(&stubUserService{}, imp).Import(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	if len(imp.got) != 2 || imp.got[1].Role != "lecturer" || imp.got[1].Courses[0] != "CSC201" {
		t.Fatalf("unexpected records: %+v", imp.got)
	}
	resp := decodeBody(t, rec)
	if resp["imported"] != float64(1) || len(resp["errors"].([]any)) != 1 {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestUserHandler_Import_Rejects(t *testing.T) {
	imp := &stubImporter{}
	for _, body := range []string{`{"user_id":"S1"}`, `[]`} {
		c, _ := newContext(http.MethodPost, "/users/import", strings.NewReader(body), adminUser)
		if err := NewUserHandler(&stubUserService{}, imp).Import(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %q: expected ErrValidation, got %v", body, err)
		}
	}
	if imp.got != nil {
		t.Fatalf("importer must not run for rejected payloads")
	}
}
