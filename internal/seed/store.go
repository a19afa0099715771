package seed

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the subset of database operations the seed job needs.
type Store interface {
	DeleteAll(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []any) ([]primitive.ObjectID, error)
}

type mongoStore struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) Store {
	return &mongoStore{db: db, timeout: timeout}
}

func (s *mongoStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	return result.DeletedCount, nil
}

func (s *mongoStore) InsertMany(ctx context.Context, collection string, docs []any) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, raw := range result.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected id type %T in %s", raw, collection)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
