package service

import (
	"context"
	"errors"

	"hotels/internal/hotels/events"
	hotelserrors "hotels/internal/hotels/errors"
	"hotels/internal/hotels/repository"
	"hotels/internal/hotels/validator"
	apperrors "hotels/pkg/errors"
	"hotels/pkg/logger"
	"hotels/pkg/model"
	"hotels/pkg/validation"
)

type HotelService interface {
	List(ctx context.Context) ([]*model.Hotel, error)
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error)
	// AddAmenity and RemoveAmenity return (nil, nil) when the id matches nothing.
	AddAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	RemoveAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	repo      repository.HotelRepository
	validator *validator.HotelValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewHotelService(
	repo repository.HotelRepository,
	validator *validator.HotelValidator,
	publisher events.Publisher,
	log *logger.Logger,
) HotelService {
	return &hotelService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *hotelService) List(ctx context.Context) ([]*model.Hotel, error) {
	hotels, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.FromContext(ctx).Error("Failed to list hotels", "error", err)
		return nil, apperrors.Internal("Failed to list hotels", err)
	}
	if hotels == nil {
		hotels = []*model.Hotel{}
	}
	return hotels, nil
}

func (s *hotelService) Create(ctx context.Context, hotel *model.Hotel) error {
	log := s.log.FromContext(ctx)
	hotel.ApplyDefaults()

	if err := s.validator.Validate(hotel); err != nil {
		log.Warn("Hotel validation failed",
			"name", hotel.Name,
			"location", hotel.Location,
			"error", err,
		)
		return validationError("Hotel validation failed", err)
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		log.Error("Failed to create hotel",
			"name", hotel.Name,
			"error", err,
		)
		return apperrors.Internal("Failed to create hotel", err)
	}

	log.Info("Hotel created successfully",
		"id", hotel.ID.Hex(),
		"name", hotel.Name,
		"location", hotel.Location,
	)

	s.publish(ctx, events.HotelCreated, hotel.ID.Hex(), hotel)
	return nil
}

func (s *hotelService) Update(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
	log := s.log.FromContext(ctx)

	if err := s.validator.ValidateUpdate(update); err != nil {
		log.Warn("Hotel update validation failed", "id", id, "error", err)
		return nil, validationError("Hotel validation failed", err)
	}

	hotel, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", id)
		}
		if errors.Is(err, hotelserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid hotel ID format")
		}
		log.Error("Failed to update hotel", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update hotel", err)
	}

	if !update.IsEmpty() {
		log.Info("Hotel updated successfully", "id", id)
		s.publish(ctx, events.HotelUpdated, id, hotel)
	}
	return hotel, nil
}

func (s *hotelService) AddAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	return s.changeAmenity(ctx, id, amenity, s.repo.PushAmenity, events.HotelAmenityAdded, "Failed to add amenity")
}

func (s *hotelService) RemoveAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	return s.changeAmenity(ctx, id, amenity, s.repo.PullAmenity, events.HotelAmenityRemoved, "Failed to remove amenity")
}

type amenityOp func(ctx context.Context, id string, amenity string) (*model.Hotel, error)

// changeAmenity reports every failure as a bad request; an unknown id is not a failure.
func (s *hotelService) changeAmenity(ctx context.Context, id, amenity string, op amenityOp, eventType, failMsg string) (*model.Hotel, error) {
	log := s.log.FromContext(ctx)

	if err := s.validator.ValidateAmenity(&model.AmenityRequest{Amenity: amenity}); err != nil {
		log.Warn("Amenity validation failed", "id", id, "error", err)
		return nil, apperrors.BadRequest(failMsg, err).WithDetails(detailsOf(err))
	}

	hotel, err := op(ctx, id, amenity)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) {
			log.Debug("Amenity change matched no hotel", "id", id)
			return nil, nil
		}
		log.Error(failMsg, "id", id, "amenity", amenity, "error", err)
		return nil, apperrors.BadRequest(failMsg, err)
	}

	log.Info("Hotel amenities changed", "id", id, "amenity", amenity, "event", eventType)
	s.publish(ctx, eventType, id, hotel)
	return hotel, nil
}

// Delete succeeds whether or not the hotel existed; every failure is internal.
func (s *hotelService) Delete(ctx context.Context, id string) error {
	log := s.log.FromContext(ctx)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("Failed to delete hotel", "id", id, "error", err)
		return apperrors.Internal("Failed to delete hotel", err)
	}

	if deleted {
		log.Info("Hotel deleted successfully", "id", id)
		s.publish(ctx, events.HotelDeleted, id, nil)
	}
	return nil
}

// publish never fails the request; errors are only logged.
func (s *hotelService) publish(ctx context.Context, eventType, id string, hotel *model.Hotel) {
	event := events.HotelEvent{Type: eventType, HotelID: id, Hotel: hotel}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.FromContext(ctx).Error("Failed to publish hotel event",
			"id", id,
			"event", eventType,
			"error", err,
		)
	}
}

func validationError(msg string, err error) error {
	return apperrors.Validation(msg, detailsOf(err))
}

func detailsOf(err error) map[string]any {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Details()
	}
	return map[string]any{"error": err.Error()}
}
