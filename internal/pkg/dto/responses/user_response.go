package responses

import "time"

type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	Address      string        `json:"address,omitempty"`
	Role         string        `json:"role"`
	Reservations []Reservation `json:"reservations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type Reservation struct {
	BookingID  string    `json:"bookingId"`
	ClinicName string    `json:"clinicName"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
}
