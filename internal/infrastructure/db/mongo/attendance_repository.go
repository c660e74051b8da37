package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

const collectionAttendance = "attendance"

// AttendanceRepository implements ports.AttendanceRepository using MongoDB.
type AttendanceRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewAttendanceRepository(db *mongo.Database, timeout time.Duration) *AttendanceRepository {
	return &AttendanceRepository{coll: db.Collection(collectionAttendance), timeout: callTimeout(timeout)}
}

var _ ports.AttendanceRepository = (*AttendanceRepository)(nil)

// Record appends a mark to the ledger and assigns its id.
func (r *AttendanceRepository) Record(ctx context.Context, record *domain.AttendanceRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := *record
	doc.ID = primitive.NewObjectID().Hex()
	doc.RecordedAt = doc.RecordedAt.UTC()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeError("record attendance", err)
	}
	record.ID = doc.ID
	return nil
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"student_id": studentID})
}

func (r *AttendanceRepository) ListByLecturer(ctx context.Context, lecturerID string) ([]*domain.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"lecturer_id": lecturerID})
}

func (r *AttendanceRepository) find(ctx context.Context, filter bson.M) ([]*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeError("list attendance", err)
	}

	records := make([]*domain.AttendanceRecord, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, storeError("list attendance", err)
	}
	return records, nil
}
