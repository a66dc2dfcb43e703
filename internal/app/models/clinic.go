package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Clinic struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Name           LocalizedText        `bson:"name"`
	Description    LocalizedText        `bson:"description,omitempty"`
	Address        LocalizedText        `bson:"address,omitempty"`
	Phone          string               `bson:"phone,omitempty"`
	Email          string               `bson:"email,omitempty"`
	Status         string               `bson:"status"`
	Specialization string               `bson:"specialization"`
	Specialties    []LocalizedText      `bson:"specialties,omitempty"`
	SpecialWords   []LocalizedText      `bson:"specialWords,omitempty"`
	AvailableDays  []string             `bson:"availableDays"`
	Price          float64              `bson:"price,omitempty"`

	IsAvailableForBooking bool `bson:"isAvailableForBooking"`

	Doctors       []primitive.ObjectID `bson:"doctors"`
	Videos        []ClinicVideo        `bson:"videos,omitempty"`
	ImageURL      string               `bson:"imageUrl,omitempty"`
	ImageKey      string               `bson:"imageKey,omitempty"`
	TotalBookings int64                `bson:"totalBookings"`
	TimeModel     `bson:",inline"`
}

type ClinicVideo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Label    LocalizedText      `bson:"label"`
	VideoURL string             `bson:"videoUrl"`
	VideoKey string             `bson:"videoKey"`
}
