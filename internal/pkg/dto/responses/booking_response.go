package responses

import "time"

type Booking struct {
	ID               string    `json:"id"`
	ClinicID         string    `json:"clinicId"`
	ClinicName       string    `json:"clinicName"`
	ClientName       string    `json:"clientName"`
	ClientEmail      string    `json:"clientEmail"`
	ClientPhone      string    `json:"clientPhone"`
	ClientAddress    string    `json:"clientAddress"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Notes            string    `json:"notes,omitempty"`
	BookingNumber    int64     `json:"bookingNumber"`
	ConfirmationCode string    `json:"confirmationCode"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ValidDates struct {
	Dates []string `json:"dates"`
}
