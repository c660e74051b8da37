package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

const (
	collectionStudents  = "students"
	collectionLecturers = "lecturers"
	collectionExaminers = "examiners"
)

// storedRoles lists the partitions in probe order. The administrator is
// never stored.
var storedRoles = []domain.Role{domain.RoleStudent, domain.RoleLecturer, domain.RoleExaminer}

// collectionFor maps a role to its partition.
func collectionFor(role domain.Role) (string, error) {
	switch role {
	case domain.RoleStudent:
		return collectionStudents, nil
	case domain.RoleLecturer:
		return collectionLecturers, nil
	case domain.RoleExaminer:
		return collectionExaminers, nil
	case domain.RoleAdmin:
		return "", domain.NewValidationError("admin accounts are not stored")
	}
	return "", domain.NewValidationError(fmt.Sprintf("unknown role %q", role))
}

type userDocument struct {
	UserID       string    `bson:"user_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Role         string    `bson:"role"`
	PasswordHash string    `bson:"password_hash"`
	Level        int       `bson:"level,omitempty"`
	Program      string    `bson:"program,omitempty"`
	Department   string    `bson:"department,omitempty"`
	Courses      []string  `bson:"courses,omitempty"`
	Levels       []int     `bson:"levels,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toDocument(u *domain.User) userDocument {
	return userDocument{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role.String(),
		PasswordHash: u.PasswordHash,
		Level:        u.Level,
		Program:      u.Program,
		Department:   u.Department,
		Courses:      u.Courses,
		Levels:       u.Levels,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

// toUser trusts the partition over the stored role field.
func (d userDocument) toUser(role domain.Role) *domain.User {
	return &domain.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         role,
		PasswordHash: d.PasswordHash,
		Level:        d.Level,
		Program:      d.Program,
		Department:   d.Department,
		Courses:      d.Courses,
		Levels:       d.Levels,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository is the credential store, one collection per stored role.
type UserRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewUserRepository(db *mongo.Database, timeout time.Duration) *UserRepository {
	return &UserRepository{db: db, timeout: callTimeout(timeout)}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) collection(role domain.Role) (*mongo.Collection, error) {
	name, err := collectionFor(role)
	if err != nil {
		return nil, err
	}
	return r.db.Collection(name), nil
}

// FindByID probes each partition in turn.
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	for _, role := range storedRoles {
		user, err := r.findIn(ctx, role, userID)
		if errors.Is(err, domain.ErrUserNotFound) {
			continue
		}
		return user, err
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) findIn(ctx context.Context, role domain.Role, userID string) (*domain.User, error) {
	coll, err := r.collection(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc userDocument
	if err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeError("find user", err)
	}
	return doc.toUser(role), nil
}

// List returns every stored user, partition by partition, each sorted by id.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for _, role := range storedRoles {
		part, err := r.ListByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		users = append(users, part...)
	}
	return users, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if role == domain.RoleAdmin {
		return []*domain.User{}, nil
	}
	coll, err := r.collection(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}}))
	if err != nil {
		return nil, storeError("list users", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeError("list users", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toUser(role))
	}
	return users, nil
}

// Create inserts user into its role partition. The id must be unused in every
// partition; the unique index per collection backs the same-partition case.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	coll, err := r.collection(user.Role)
	if err != nil {
		return err
	}

	_, err = r.FindByID(ctx, user.UserID)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := coll.InsertOne(ctx, toDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return storeError("insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}}
	return r.eachPartition(ctx, "update password", func(ctx context.Context, coll *mongo.Collection) (bool, error) {
		res, err := coll.UpdateOne(ctx, bson.M{"user_id": userID}, update)
		if err != nil {
			return false, err
		}
		return res.MatchedCount > 0, nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.eachPartition(ctx, "delete user", func(ctx context.Context, coll *mongo.Collection) (bool, error) {
		res, err := coll.DeleteOne(ctx, bson.M{"user_id": userID})
		if err != nil {
			return false, err
		}
		return res.DeletedCount > 0, nil
	})
}

// eachPartition runs fn on every partition until one reports a match.
func (r *UserRepository) eachPartition(ctx context.Context, op string, fn func(context.Context, *mongo.Collection) (bool, error)) error {
	for _, role := range storedRoles {
		coll, err := r.collection(role)
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		matched, err := fn(callCtx, coll)
		cancel()
		if err != nil {
			return storeError(op, err)
		}
		if matched {
			return nil
		}
	}
	return domain.ErrUserNotFound
}
