package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	hotelserrors "hotels/internal/hotels/errors"
	"hotels/pkg/config"
	"hotels/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "hotels"
)

type HotelRepository interface {
	FindAll(ctx context.Context) ([]*model.Hotel, error)
	FindByID(ctx context.Context, id string) (*model.Hotel, error)
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error)
	PushAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	PullAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type mongoHotelRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoHotelRepository(cfg *config.Config) HotelRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHotelRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a single operation without outliving the caller's deadline.
func (r *mongoHotelRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	if remaining := time.Until(deadline); remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", hotelserrors.ErrInvalidID, id)
	}
	return objectID, nil
}

func (r *mongoHotelRepository) FindAll(ctx context.Context) ([]*model.Hotel, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := make([]*model.Hotel, 0)
	if err = cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	for _, hotel := range hotels {
		hotel.ApplyDefaults()
	}

	return hotels, nil
}

func (r *mongoHotelRepository) FindByID(ctx context.Context, id string) (*model.Hotel, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var hotel model.Hotel
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	hotel.ApplyDefaults()
	return &hotel, nil
}

func (r *mongoHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	hotel.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, hotel); err != nil {
		hotel.ID = primitive.NilObjectID
		return fmt.Errorf("failed to create hotel: %w", err)
	}

	return nil
}

// Update $sets only the supplied fields. An empty update returns the current document.
func (r *mongoHotelRepository) Update(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
	set := setFields(update)
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	hotel, err := r.findOneAndUpdate(ctx, objectID, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, id)
	}
	return hotel, nil
}

func (r *mongoHotelRepository) PushAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	hotel, err := r.findOneAndUpdate(ctx, objectID, bson.M{"$push": bson.M{"amenities": amenity}})
	if err != nil {
		return nil, fmt.Errorf("failed to add amenity: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, id)
	}
	return hotel, nil
}

func (r *mongoHotelRepository) PullAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	hotel, err := r.findOneAndUpdate(ctx, objectID, bson.M{"$pull": bson.M{"amenities": amenity}})
	if err != nil {
		return nil, fmt.Errorf("failed to remove amenity: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, id)
	}
	return hotel, nil
}

// findOneAndUpdate returns the post-update document, or nil when nothing matched.
// Documents stored without amenities come back with an empty list.
func (r *mongoHotelRepository) findOneAndUpdate(ctx context.Context, objectID primitive.ObjectID, update bson.M) (*model.Hotel, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hotel model.Hotel
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	hotel.ApplyDefaults()
	return &hotel, nil
}

// Delete reports whether a document was removed. A missing document is not an error.
func (r *mongoHotelRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := parseID(id)
	if err != nil {
		return false, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete hotel: %w", err)
	}

	return result.DeletedCount > 0, nil
}

func setFields(update *model.HotelUpdate) bson.M {
	set := bson.M{}
	if update == nil {
		return set
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.Amenities != nil {
		amenities := *update.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		set["amenities"] = amenities
	}
	if update.Metadata != nil {
		set["metadata"] = *update.Metadata
	}
	return set
}
