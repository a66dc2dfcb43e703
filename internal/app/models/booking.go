package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty"`
	Clinic           primitive.ObjectID  `bson:"clinic"`
	ClinicName       string              `bson:"clinicName"`
	User             *primitive.ObjectID `bson:"user,omitempty"`
	ClientName       string              `bson:"clientName"`
	ClientEmail      string              `bson:"clientEmail"`
	ClientPhone      string              `bson:"clientPhone"`
	ClientAddress    string              `bson:"clientAddress"`
	Date             time.Time           `bson:"date"`
	Time             string              `bson:"time"`
	Notes            string              `bson:"notes,omitempty"`
	BookingNumber    int64               `bson:"bookingNumber"`
	ConfirmationCode string              `bson:"confirmationCode"`
	Status           string              `bson:"status"`
	TimeModel        `bson:",inline"`
}

// BookingCounter backs booking number allocation. One document per
// clinic per calendar day, incremented atomically on create.
type BookingCounter struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ClinicID primitive.ObjectID `bson:"clinicId"`
	Date     time.Time          `bson:"date"`
	Sequence int64              `bson:"sequence"`
}
