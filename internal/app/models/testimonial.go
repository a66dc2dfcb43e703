package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	JobTitle  string             `bson:"jobTitle,omitempty"`
	Text      string             `bson:"text"`
	Rating    int                `bson:"rating"`
	TimeModel `bson:",inline"`
}
