package validators

import "go.mongodb.org/mongo-driver/bson"

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"hotel_id", "type", "price"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":      bson.M{"bsonType": "objectId"},
			"hotel_id": bson.M{"bsonType": "objectId"},
			"type":     bson.M{"bsonType": "string"},
			"price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"available", "booked"},
			},
		},
	},
}
