package responses

import "time"

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
