package validators

import "go.mongodb.org/mongo-driver/bson"

var HotelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "location"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":      bson.M{"bsonType": "objectId"},
			"name":     bson.M{"bsonType": "string"},
			"location": bson.M{"bsonType": "string"},
			"rating": bson.M{
				"bsonType": "number",
				"minimum":  1,
				"maximum":  5,
			},
			"amenities": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
			"metadata": bson.M{"bsonType": "object"},
		},
	},
}
