package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoomStatusAvailable = "available"
	RoomStatusBooked    = "booked"
)

type Room struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	HotelID primitive.ObjectID `json:"hotel_id" bson:"hotel_id" validate:"required"`
	Type    string             `json:"type" bson:"type" validate:"required"`
	Price   float64            `json:"price" bson:"price" validate:"gte=0"`
	Status  string             `json:"status" bson:"status" validate:"required,oneof=available booked"`
}

func (r *Room) ApplyDefaults() {
	if r.Status == "" {
		r.Status = RoomStatusAvailable
	}
}
