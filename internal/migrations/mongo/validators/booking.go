package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"hotel_id",
			"room_id",
			"check_in",
			"check_out",
		},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":       bson.M{"bsonType": "objectId"},
			"user_id":   bson.M{"bsonType": "objectId"},
			"hotel_id":  bson.M{"bsonType": "objectId"},
			"room_id":   bson.M{"bsonType": "objectId"},
			"check_in":  bson.M{"bsonType": "date"},
			"check_out": bson.M{"bsonType": "date"},
			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"confirmed", "cancelled"},
			},
		},
	},
}
