package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Name                 string             `bson:"name"`
	Email                string             `bson:"email"`
	Password             string             `bson:"password"`
	Phone                string             `bson:"phone,omitempty"`
	Address              string             `bson:"address,omitempty"`
	Role                 string             `bson:"role"`
	Reservations         []Reservation      `bson:"reservations"`
	ResetPasswordToken   string             `bson:"resetPasswordToken"`
	ResetPasswordExpires *time.Time         `bson:"resetPasswordExpires"`
	TimeModel            `bson:",inline"`
}

// Reservation mirrors a booking into the owning user's document so the
// profile endpoint can list them without a join. Entries are matched
// back to bookings by BookingID.
type Reservation struct {
	BookingID  primitive.ObjectID `bson:"bookingId"`
	ClinicName string             `bson:"clinicName"`
	Date       time.Time          `bson:"date"`
	Time       string             `bson:"time"`
	Status     string             `bson:"status"`
}
