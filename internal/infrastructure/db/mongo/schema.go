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
)

// SchemaVersion is the layout this build reads and writes. Bump it together
// with the index set below.
const SchemaVersion = 1

const (
	collectionMigrations = "schema_migrations"
	schemaDocumentID     = "schema"
	schemaTimeout        = 30 * time.Second
)

type schemaDocument struct {
	ID        string    `bson:"_id"`
	Version   int       `bson:"version"`
	AppliedAt time.Time `bson:"applied_at"`
}

// EnsureSchema creates the indexes and records the schema version. A database
// already migrated by a newer build is refused.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	migrations := db.Collection(collectionMigrations)

	var current schemaDocument
	err := migrations.FindOne(ctx, bson.M{"_id": schemaDocumentID}).Decode(&current)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return storeError("read schema version", err)
	}
	if err := checkSchemaVersion(current.Version); err != nil {
		return err
	}

	for _, role := range storedRoles {
		name, err := collectionFor(role)
		if err != nil {
			return err
		}
		_, err = db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return storeError("create "+name+" index", err)
		}
	}

	_, err = db.Collection(collectionAttendance).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "recorded_at", Value: -1}}},
		{Keys: bson.D{{Key: "lecturer_id", Value: 1}, {Key: "recorded_at", Value: -1}}},
	})
	if err != nil {
		return storeError("create attendance indexes", err)
	}

	if current.Version == SchemaVersion {
		return nil
	}
	_, err = migrations.UpdateOne(ctx,
		bson.M{"_id": schemaDocumentID},
		bson.M{"$set": bson.M{"version": SchemaVersion, "applied_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storeError("write schema version", err)
	}
	return nil
}

func checkSchemaVersion(stored int) error {
	if stored > SchemaVersion {
		return fmt.Errorf("%w: database at v%d, build supports v%d", domain.ErrSchemaVersion, stored, SchemaVersion)
	}
	return nil
}
