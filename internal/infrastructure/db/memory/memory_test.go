package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gctu/attendance-api/internal/core/domain"
)

func TestUserRepository_CreateFindDelete(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{UserID: "S100", Name: "Ama", Role: domain.RoleStudent, Courses: []string{"CSC201"}}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &domain.User{UserID: "S100", Role: domain.RoleLecturer}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists across roles, got %v", err)
	}

	got, err := repo.FindByID(ctx, "S100")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	got.Courses[0] = "mutated"
	again, _ := repo.FindByID(ctx, "S100")
	if again.Courses[0] != "CSC201" {
		t.Fatalf("repository leaked internal slice")
	}

	if err := repo.Delete(ctx, "S100"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "S100"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserRepository_ListOrdering(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.User{UserID: "L1", Role: domain.RoleLecturer})
	_ = repo.Create(ctx, &domain.User{UserID: "S2", Role: domain.RoleStudent})
	_ = repo.Create(ctx, &domain.User{UserID: "S1", Role: domain.RoleStudent})

	users, _ := repo.List(ctx)
	want := []string{"S1", "S2", "L1"}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i, id := range want {
		if users[i].UserID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, users[i].UserID)
		}
	}

	students, _ := repo.ListByRole(ctx, domain.RoleStudent)
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
}

func TestAttendanceRepository_NewestFirst(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_ = repo.Record(ctx, &domain.AttendanceRecord{StudentID: "S1", LecturerID: "L1", RecordedAt: base})
	_ = repo.Record(ctx, &domain.AttendanceRecord{StudentID: "S1", LecturerID: "L2", RecordedAt: base.Add(time.Hour)})

	recs, _ := repo.ListByStudent(ctx, "S1")
	if len(recs) != 2 || recs[0].LecturerID != "L2" {
		t.Fatalf("expected newest record first, got %+v", recs)
	}
	if recs[0].ID == "" {
		t.Fatalf("expected record id to be assigned")
	}

	byLecturer, _ := repo.ListByLecturer(ctx, "L1")
	if len(byLecturer) != 1 {
		t.Fatalf("expected 1 record for L1, got %d", len(byLecturer))
	}
}
