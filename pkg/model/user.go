package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleGuest      = "guest"
	RoleAdmin      = "admin"
	RoleHotelOwner = "hotel_owner"
)

type User struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" validate:"required"`
	Role  string             `json:"role" bson:"role" validate:"required,oneof=guest admin hotel_owner"`
	Email string             `json:"email" bson:"email" validate:"required,basic_email"`
}
