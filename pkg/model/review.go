package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	HotelID primitive.ObjectID `json:"hotel_id" bson:"hotel_id" validate:"required"`
	Rating  float64            `json:"rating" bson:"rating" validate:"required,gte=1,lte=5"`
	Comment string             `json:"comment,omitempty" bson:"comment,omitempty" validate:"max=500"`
}
