package queue

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

type stubImporter struct {
	mu   sync.Mutex
	seen map[string]string // user_id -> name of the first record stored
}

func (s *stubImporter) ImportOne(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.UserID == "" {
		return nil, domain.NewValidationError("missing required fields: user_id")
	}
	if _, ok := s.seen[in.UserID]; ok {
		return nil, domain.ErrUserExists
	}
	s.seen[in.UserID] = in.Name
	return &domain.User{UserID: in.UserID, Name: in.Name}, nil
}

func TestImportDispatcher_Run(t *testing.T) {
	imp := &stubImporter{seen: make(map[string]string)}
	d := NewImportDispatcher(4, imp, zerolog.Nop())

	records := []ports.RegisterUserInput{
		{UserID: "S1", Name: "first"},
		{UserID: "S2", Name: "Kofi"},
		{UserID: ""},
		{UserID: "S1", Name: "second"},
		{UserID: "S3", Name: "Esi"},
	}

	res := d.Run(context.Background(), records)
	if res.Imported != 3 {
		t.Fatalf("expected 3 imported, got %d (%v)", res.Imported, res.Errors)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "record 3") || !strings.HasPrefix(res.Errors[1], "record 4 (S1)") {
		t.Fatalf("errors must follow input order: %v", res.Errors)
	}
	if imp.seen["S1"] != "first" {
		t.Fatalf("expected first record for S1 to win, got %q", imp.seen["S1"])
	}
}

func TestImportDispatcher_CancelledContext(t *testing.T) {
	imp := &stubImporter{seen: make(map[string]string)}
	d := NewImportDispatcher(0, imp, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := d.Run(ctx, []ports.RegisterUserInput{{UserID: "S1"}, {UserID: "S2"}})
	if res.Imported != 0 || len(res.Errors) != 2 {
		t.Fatalf("expected every record to fail, got %+v", res)
	}
	if len(imp.seen) != 0 {
		t.Fatalf("importer must not be called after cancellation")
	}
}

func TestImportDispatcher_Empty(t *testing.T) {
	d := NewImportDispatcher(2, &stubImporter{seen: map[string]string{}}, zerolog.Nop())
	res := d.Run(context.Background(), nil)
	if res.Imported != 0 || res.Errors == nil || len(res.Errors) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestImportDispatcher_ShardIndexStable(t *testing.T) {
	d := NewImportDispatcher(8, nil, zerolog.Nop())
	a, b := d.shardIndex("S100"), d.shardIndex("S100")
	if a != b || a < 0 || a >= 8 {
		t.Fatalf("unstable shard: %d %d", a, b)
	}
}
