package responses

import "time"

// Clinic carries the clinic document joined with its doctors, matching
// what clinic reads return.
type Clinic struct {
	ID             string          `json:"id"`
	Name           LocalizedText   `json:"name"`
	Description    LocalizedText   `json:"description"`
	Address        LocalizedText   `json:"address"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Status         string          `json:"status"`
	Specialization string          `json:"specialization"`
	Specialties    []LocalizedText `json:"specialties,omitempty"`
	SpecialWords   []LocalizedText `json:"specialWords,omitempty"`
	AvailableDays  []string        `json:"availableDays"`
	Price          float64         `json:"price,omitempty"`

	IsAvailableForBooking bool `json:"isAvailableForBooking"`

	Doctors      []Doctor      `json:"doctors"`
	Videos       []ClinicVideo `json:"videos,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	BookingStats BookingStats  `json:"bookingStats"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type ClinicVideo struct {
	ID       string        `json:"id"`
	Label    LocalizedText `json:"label"`
	VideoURL string        `json:"videoUrl"`
}

// BookingStats carries the lifetime total plus rolling windows computed
// from the bookings collection at read time.
type BookingStats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	LastWeek  int64 `json:"lastWeek"`
	LastMonth int64 `json:"lastMonth"`
}
