package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID   primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	HotelID  primitive.ObjectID `json:"hotel_id" bson:"hotel_id" validate:"required"`
	RoomID   primitive.ObjectID `json:"room_id" bson:"room_id" validate:"required"`
	CheckIn  time.Time          `json:"check_in" bson:"check_in" validate:"required"`
	CheckOut time.Time          `json:"check_out" bson:"check_out" validate:"required"`
	Status   string             `json:"status" bson:"status" validate:"required,oneof=confirmed cancelled"`
}

func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = BookingStatusConfirmed
	}
}
