package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// AttendanceRepository is an append-only in-memory ledger.
type AttendanceRepository struct {
	mu      sync.RWMutex
	seq     int
	records []domain.AttendanceRecord
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

var _ ports.AttendanceRepository = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) Record(_ context.Context, record *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	record.ID = strconv.Itoa(r.seq)
	r.records = append(r.records, *record)
	return nil
}

func (r *AttendanceRepository) ListByStudent(_ context.Context, studentID string) ([]*domain.AttendanceRecord, error) {
	return r.filter(func(rec *domain.AttendanceRecord) bool { return rec.StudentID == studentID }), nil
}

func (r *AttendanceRepository) ListByLecturer(_ context.Context, lecturerID string) ([]*domain.AttendanceRecord, error) {
	return r.filter(func(rec *domain.AttendanceRecord) bool { return rec.LecturerID == lecturerID }), nil
}

func (r *AttendanceRepository) filter(keep func(*domain.AttendanceRecord) bool) []*domain.AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.AttendanceRecord, 0)
	for i := range r.records {
		if keep(&r.records[i]) {
			rec := r.records[i]
			out = append(out, &rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}
