package repository

import (
	"context"
	"testing"
	"time"

	hotelserrors "hotels/internal/hotels/errors"
	"hotels/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSetFields(t *testing.T) {
	name := "Grand Hotel Almaty"
	rating := 4.8
	amenities := []string{"Wi-Fi"}
	metadata := map[string]any{"reviews_count": 121}

	tests := []struct {
		name   string
		update *model.HotelUpdate
		want   bson.M
	}{
		{"nil update", nil, bson.M{}},
		{"empty update", &model.HotelUpdate{}, bson.M{}},
		{"name only", &model.HotelUpdate{Name: &name}, bson.M{"name": name}},
		{
			"all supplied fields",
			&model.HotelUpdate{Name: &name, Rating: &rating, Amenities: &amenities, Metadata: &metadata},
			bson.M{"name": name, "rating": rating, "amenities": amenities, "metadata": metadata},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, setFields(tt.update))
		})
	}
}

func TestSetFields_NullAmenitiesBecomeEmptyList(t *testing.T) {
	var amenities []string
	set := setFields(&model.HotelUpdate{Amenities: &amenities})

	assert.Equal(t, []string{}, set["amenities"])
}

func TestParseID(t *testing.T) {
	_, err := parseID("65f0c0ffee0000000000abcd")
	require.NoError(t, err)

	_, err = parseID("not-an-object-id")
	assert.ErrorIs(t, err, hotelserrors.ErrInvalidID)
}

func TestWithTimeout_KeepsShorterParentDeadline(t *testing.T) {
	r := &mongoHotelRepository{}

	parent, cancelParent := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelParent()

	ctx, cancel := r.withTimeout(parent, time.Hour)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestWithTimeout_AppliesTimeoutWithoutParentDeadline(t *testing.T) {
	r := &mongoHotelRepository{}

	ctx, cancel := r.withTimeout(context.Background(), time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}
