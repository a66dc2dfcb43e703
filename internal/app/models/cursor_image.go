package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CursorImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title,omitempty"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"imageUrl"`
	ImageKey    string             `bson:"imageKey"`
	Order       int                `bson:"order"`
	IsActive    bool               `bson:"isActive"`
	TimeModel   `bson:",inline"`
}
