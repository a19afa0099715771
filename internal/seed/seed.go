package seed

import (
	"context"
	"fmt"

	migrations "hotels/internal/migrations/mongo"
	"hotels/pkg/logger"
	"hotels/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collections is the clear order used before inserting fixtures.
var Collections = []string{
	migrations.UsersCollection,
	migrations.HotelsCollection,
	migrations.RoomsCollection,
	migrations.BookingsCollection,
	migrations.ReviewsCollection,
}

type Seeder struct {
	store     Store
	validator *validation.Validator
	log       *logger.Logger
}

func NewSeeder(store Store, log *logger.Logger) *Seeder {
	return &Seeder{
		store:     store,
		validator: validation.New(),
		log:       log,
	}
}

// Run wipes every collection and inserts the fixtures. The first failure aborts.
func (s *Seeder) Run(ctx context.Context) error {
	for _, collection := range Collections {
		deleted, err := s.store.DeleteAll(ctx, collection)
		if err != nil {
			return err
		}
		s.log.Info("Cleared collection", "collection", collection, "deleted", deleted)
	}

	userIDs, err := insert(ctx, s, migrations.UsersCollection, Users())
	if err != nil {
		return err
	}

	hotelIDs, err := insert(ctx, s, migrations.HotelsCollection, Hotels())
	if err != nil {
		return err
	}

	roomIDs, err := insert(ctx, s, migrations.RoomsCollection, Rooms(hotelIDs))
	if err != nil {
		return err
	}

	if _, err := insert(ctx, s, migrations.BookingsCollection, Bookings(userIDs, hotelIDs, roomIDs)); err != nil {
		return err
	}

	if _, err := insert(ctx, s, migrations.ReviewsCollection, Reviews(userIDs, hotelIDs)); err != nil {
		return err
	}

	s.log.Info("Seed data inserted")
	return nil
}

// defaulter is implemented by models with enumerated defaults.
type defaulter interface {
	ApplyDefaults()
}

func insert[T any](ctx context.Context, s *Seeder, collection string, docs []T) ([]primitive.ObjectID, error) {
	batch := make([]any, 0, len(docs))
	for i := range docs {
		if d, ok := any(&docs[i]).(defaulter); ok {
			d.ApplyDefaults()
		}
		if err := s.validator.Struct(&docs[i]); err != nil {
			return nil, fmt.Errorf("invalid %s fixture #%d: %w", collection, i, err)
		}
		batch = append(batch, docs[i])
	}

	ids, err := s.store.InsertMany(ctx, collection, batch)
	if err != nil {
		return nil, err
	}
	if len(ids) != len(docs) {
		return nil, fmt.Errorf("inserted %d of %d %s", len(ids), len(docs), collection)
	}

	s.log.Info("Inserted documents", "collection", collection, "count", len(ids))
	return ids, nil
}
