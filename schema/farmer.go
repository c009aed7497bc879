package schema

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	FarmerCollection = "farmers"
)

// Farmer is a read-only projection of the external farmer registry.
// Registration and updates happen out of band; this service only reads
// positions and contact channels. A farmer without any contact channel
// is valid and simply receives no alerts.
type Farmer struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Latitude    float64            `json:"latitude" bson:"latitude"`
	Longitude   float64            `json:"longitude" bson:"longitude"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Crops       []string           `json:"crops,omitempty" bson:"crops,omitempty"`
}
