package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Hotel struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Location  string             `json:"location" bson:"location" validate:"required"`
	Rating    *float64           `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities []string           `json:"amenities" bson:"amenities"`
	Metadata  map[string]any     `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

func (h *Hotel) ApplyDefaults() {
	if h.Amenities == nil {
		h.Amenities = []string{}
	}
}

// HotelUpdate carries a partial update. Nil fields are left untouched.
type HotelUpdate struct {
	Name      *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Location  *string         `json:"location,omitempty" validate:"omitempty,min=1"`
	Rating    *float64        `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities *[]string       `json:"amenities,omitempty"`
	Metadata  *map[string]any `json:"metadata,omitempty"`
}

func (u *HotelUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Rating == nil && u.Amenities == nil && u.Metadata == nil
}

type AmenityRequest struct {
	Amenity string `json:"amenity" validate:"required"`
}
