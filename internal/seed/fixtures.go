package seed

import (
	"time"

	"hotels/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rating(v float64) *float64 {
	return &v
}

func Users() []model.User {
	return []model.User{
		{Name: "Алинур", Role: model.RoleGuest, Email: "alinurlpv@gmail.com"},
		{Name: "Еркежан", Role: model.RoleAdmin, Email: "erkezhan@gmail.com"},
		{Name: "Отель Luxe", Role: model.RoleHotelOwner, Email: "luxe@example.com"},
	}
}

func Hotels() []model.Hotel {
	return []model.Hotel{
		{
			Name:      "Grand Hotel",
			Location:  "Алматы",
			Rating:    rating(4.5),
			Amenities: []string{"Wi-Fi", "Бассейн", "Фитнес"},
			Metadata: map[string]any{
				"reviews_count": 120,
				"special_offers": []any{
					map[string]any{"type": "discount", "value": 10},
					map[string]any{"type": "bonus", "description": "Бесплатный завтрак"},
				},
			},
		},
		{
			Name:      "City Inn",
			Location:  "Астана",
			Rating:    rating(4.2),
			Amenities: []string{"Wi-Fi", "Парковка"},
			Metadata: map[string]any{
				"reviews_count": 80,
				"special_offers": []any{
					map[string]any{"type": "discount", "value": 15},
				},
			},
		},
	}
}

// Rooms places the first two rooms in hotels[0] and the suite in hotels[1].
// Rooms without a status take the model default.
func Rooms(hotels []primitive.ObjectID) []model.Room {
	return []model.Room{
		{HotelID: hotels[0], Type: "Deluxe", Price: 15000},
		{HotelID: hotels[0], Type: "Standard", Price: 10000, Status: model.RoomStatusBooked},
		{HotelID: hotels[1], Type: "Suite", Price: 20000},
	}
}

func Bookings(users, hotels, rooms []primitive.ObjectID) []model.Booking {
	return []model.Booking{
		{
			UserID:   users[0],
			HotelID:  hotels[0],
			RoomID:   rooms[0],
			CheckIn:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func Reviews(users, hotels []primitive.ObjectID) []model.Review {
	return []model.Review{
		{UserID: users[0], HotelID: hotels[0], Rating: 5, Comment: "Отличный отель, чисто и уютно!"},
		{UserID: users[0], HotelID: hotels[1], Rating: 4, Comment: "Неплохое место, но парковка маленькая."},
	}
}
