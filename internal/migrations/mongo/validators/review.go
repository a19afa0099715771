package validators

import "go.mongodb.org/mongo-driver/bson"

var ReviewValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"user_id", "hotel_id", "rating"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":      bson.M{"bsonType": "objectId"},
			"user_id":  bson.M{"bsonType": "objectId"},
			"hotel_id": bson.M{"bsonType": "objectId"},
			"rating": bson.M{
				"bsonType": "number",
				"minimum":  1,
				"maximum":  5,
			},
			"comment": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},
		},
	},
}
