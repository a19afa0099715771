package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotels/internal/hotels/events"
	hotelserrors "hotels/internal/hotels/errors"
	"hotels/internal/hotels/validator"
	apperrors "hotels/pkg/errors"
	"hotels/pkg/logger"
	"hotels/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ────────────────────────────────────────────────
// Mocks
// ────────────────────────────────────────────────

type mockHotelRepository struct {
	findAllFunc     func(ctx context.Context) ([]*model.Hotel, error)
	findByIDFunc    func(ctx context.Context, id string) (*model.Hotel, error)
	createFunc      func(ctx context.Context, hotel *model.Hotel) error
	updateFunc      func(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error)
	pushAmenityFunc func(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	pullAmenityFunc func(ctx context.Context, id string, amenity string) (*model.Hotel, error)
	deleteFunc      func(ctx context.Context, id string) (bool, error)
}

func (m *mockHotelRepository) FindAll(ctx context.Context) ([]*model.Hotel, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.Hotel{}, nil
}

func (m *mockHotelRepository) FindByID(ctx context.Context, id string) (*model.Hotel, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, hotel)
	}
	hotel.ID = primitive.NewObjectID()
	return nil
}

func (m *mockHotelRepository) Update(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *mockHotelRepository) PushAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	if m.pushAmenityFunc != nil {
		return m.pushAmenityFunc(ctx, id, amenity)
	}
	return nil, nil
}

func (m *mockHotelRepository) PullAmenity(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
	if m.pullAmenityFunc != nil {
		return m.pullAmenityFunc(ctx, id, amenity)
	}
	return nil, nil
}

func (m *mockHotelRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return true, nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, event events.HotelEvent) error
	published   []events.HotelEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.HotelEvent) error {
	m.published = append(m.published, event)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, event)
	}
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func newTestService(repo *mockHotelRepository) (HotelService, *mockPublisher) {
	log := logger.Discard()
	pub := &mockPublisher{}
	return NewHotelService(repo, validator.NewHotelValidator(log), pub, log), pub
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperrors.IsAppError(err), "expected AppError, got %T", err)
	assert.Equal(t, status, apperrors.AsAppError(err).StatusCode())
}

const validID = "65f0c0ffee0000000000abcd"

// ────────────────────────────────────────────────
// List
// ────────────────────────────────────────────────

func TestList(t *testing.T) {
	svc, _ := newTestService(&mockHotelRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Hotel, error) {
			return []*model.Hotel{{Name: "Grand Hotel"}, {Name: "City Inn"}}, nil
		},
	})

	hotels, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestList_NilBecomesEmpty(t *testing.T) {
	svc, _ := newTestService(&mockHotelRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Hotel, error) { return nil, nil },
	})

	hotels, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
}

func TestList_StoreFailure(t *testing.T) {
	svc, _ := newTestService(&mockHotelRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Hotel, error) {
			return nil, errors.New("server selection timeout")
		},
	})

	_, err := svc.List(context.Background())
	requireStatus(t, err, http.StatusInternalServerError)
}

// ────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{})
	rating := 4.0
	hotel := &model.Hotel{Name: "Test", Location: "X", Rating: &rating}

	require.NoError(t, svc.Create(context.Background(), hotel))

	assert.False(t, hotel.ID.IsZero())
	assert.Equal(t, []string{}, hotel.Amenities)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.HotelCreated, pub.published[0].Type)
	assert.Equal(t, hotel.ID.Hex(), pub.published[0].HotelID)
}

func TestCreate_ValidationFailures(t *testing.T) {
	high := 6.0
	tests := []struct {
		name  string
		hotel *model.Hotel
	}{
		{"missing location", &model.Hotel{Name: "X"}},
		{"missing name", &model.Hotel{Location: "X"}},
		{"rating above range", &model.Hotel{Name: "X", Location: "Y", Rating: &high}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			svc, pub := newTestService(&mockHotelRepository{
				createFunc: func(ctx context.Context, hotel *model.Hotel) error {
					created = true
					return nil
				},
			})

			err := svc.Create(context.Background(), tt.hotel)
			requireStatus(t, err, http.StatusBadRequest)
			assert.False(t, created)
			assert.Empty(t, pub.published)
		})
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{
		createFunc: func(ctx context.Context, hotel *model.Hotel) error {
			return errors.New("write concern error")
		},
	})

	err := svc.Create(context.Background(), &model.Hotel{Name: "A", Location: "B"})
	requireStatus(t, err, http.StatusInternalServerError)
	assert.Empty(t, pub.published)
}

func TestCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{})
	pub.publishFunc = func(ctx context.Context, event events.HotelEvent) error {
		return errors.New("broker unavailable")
	}

	assert.NoError(t, svc.Create(context.Background(), &model.Hotel{Name: "A", Location: "B"}))
}

// ────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────

func TestUpdate(t *testing.T) {
	location := "Almaty"
	svc, pub := newTestService(&mockHotelRepository{
		updateFunc: func(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
			return &model.Hotel{Name: "Grand Hotel", Location: *update.Location}, nil
		},
	})

	hotel, err := svc.Update(context.Background(), validID, &model.HotelUpdate{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Almaty", hotel.Location)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.HotelUpdated, pub.published[0].Type)
}

func TestUpdate_EmptyUpdateEmitsNothing(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{
		updateFunc: func(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
			return &model.Hotel{Name: "Grand Hotel"}, nil
		},
	})

	hotel, err := svc.Update(context.Background(), validID, &model.HotelUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Grand Hotel", hotel.Name)
	assert.Empty(t, pub.published)
}

func TestUpdate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		status  int
	}{
		{"not found", fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, validID), http.StatusNotFound},
		{"invalid id", fmt.Errorf("%w: %s", hotelserrors.ErrInvalidID, "nope"), http.StatusBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pub := newTestService(&mockHotelRepository{
				updateFunc: func(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
					return nil, tt.repoErr
				},
			})
			name := "New"

			_, err := svc.Update(context.Background(), validID, &model.HotelUpdate{Name: &name})
			requireStatus(t, err, tt.status)
			assert.Empty(t, pub.published)
		})
	}
}

func TestUpdate_ValidationFailure(t *testing.T) {
	called := false
	svc, _ := newTestService(&mockHotelRepository{
		updateFunc: func(ctx context.Context, id string, update *model.HotelUpdate) (*model.Hotel, error) {
			called = true
			return nil, nil
		},
	})
	rating := 9.0

	_, err := svc.Update(context.Background(), validID, &model.HotelUpdate{Rating: &rating})
	requireStatus(t, err, http.StatusBadRequest)
	assert.False(t, called)
}

// ────────────────────────────────────────────────
// Amenities
// ────────────────────────────────────────────────

func TestAddAmenity(t *testing.T) {
	var gotAmenity string
	svc, pub := newTestService(&mockHotelRepository{
		pushAmenityFunc: func(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
			gotAmenity = amenity
			return &model.Hotel{Amenities: []string{"Wi-Fi", amenity}}, nil
		},
	})

	hotel, err := svc.AddAmenity(context.Background(), validID, "Spa")
	require.NoError(t, err)
	assert.Equal(t, "Spa", gotAmenity)
	assert.Equal(t, []string{"Wi-Fi", "Spa"}, hotel.Amenities)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.HotelAmenityAdded, pub.published[0].Type)
}

func TestAmenity_NotFoundReturnsNil(t *testing.T) {
	notFound := func(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
		return nil, fmt.Errorf("%w: %s", hotelserrors.ErrNotFound, id)
	}
	svc, pub := newTestService(&mockHotelRepository{pushAmenityFunc: notFound, pullAmenityFunc: notFound})

	hotel, err := svc.AddAmenity(context.Background(), validID, "Spa")
	assert.NoError(t, err)
	assert.Nil(t, hotel)

	hotel, err = svc.RemoveAmenity(context.Background(), validID, "Spa")
	assert.NoError(t, err)
	assert.Nil(t, hotel)

	assert.Empty(t, pub.published)
}

func TestAmenity_FailuresAreBadRequest(t *testing.T) {
	tests := []struct {
		name    string
		amenity string
		repoErr error
	}{
		{"empty amenity", "", nil},
		{"invalid id", "Spa", fmt.Errorf("%w: %s", hotelserrors.ErrInvalidID, "bad")},
		{"store failure", "Spa", errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing := func(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
				return nil, tt.repoErr
			}
			svc, _ := newTestService(&mockHotelRepository{pushAmenityFunc: failing, pullAmenityFunc: failing})

			_, err := svc.AddAmenity(context.Background(), "bad", tt.amenity)
			requireStatus(t, err, http.StatusBadRequest)

			_, err = svc.RemoveAmenity(context.Background(), "bad", tt.amenity)
			requireStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestAddAmenity_WhitespaceIsAppended(t *testing.T) {
	var gotAmenity string
	svc, pub := newTestService(&mockHotelRepository{
		pushAmenityFunc: func(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
			gotAmenity = amenity
			return &model.Hotel{Amenities: []string{amenity}}, nil
		},
	})

	hotel, err := svc.AddAmenity(context.Background(), validID, " ")
	require.NoError(t, err)
	assert.Equal(t, " ", gotAmenity)
	assert.Equal(t, []string{" "}, hotel.Amenities)
	require.Len(t, pub.published, 1)
}

func TestRemoveAmenity(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{
		pullAmenityFunc: func(ctx context.Context, id string, amenity string) (*model.Hotel, error) {
			return &model.Hotel{Amenities: []string{"Pool"}}, nil
		},
	})

	hotel, err := svc.RemoveAmenity(context.Background(), validID, "Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, hotel.Amenities)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.HotelAmenityRemoved, pub.published[0].Type)
}

// ────────────────────────────────────────────────
// Delete
// ────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{})

	require.NoError(t, svc.Delete(context.Background(), validID))
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.HotelDeleted, pub.published[0].Type)
	assert.Nil(t, pub.published[0].Hotel)
}

func TestDelete_MissingIsNotAnError(t *testing.T) {
	svc, pub := newTestService(&mockHotelRepository{
		deleteFunc: func(ctx context.Context, id string) (bool, error) { return false, nil },
	})

	assert.NoError(t, svc.Delete(context.Background(), validID))
	assert.Empty(t, pub.published)
}

func TestDelete_FailuresAreInternal(t *testing.T) {
	for _, repoErr := range []error{
		fmt.Errorf("%w: %s", hotelserrors.ErrInvalidID, "nope"),
		errors.New("connection reset"),
	} {
		svc, _ := newTestService(&mockHotelRepository{
			deleteFunc: func(ctx context.Context, id string) (bool, error) { return false, repoErr },
		})

		err := svc.Delete(context.Background(), "nope")
		requireStatus(t, err, http.StatusInternalServerError)
	}
}
