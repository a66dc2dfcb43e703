package responses

import "time"

type Doctor struct {
	ID                string          `json:"id"`
	Name              LocalizedText   `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Address           LocalizedText   `json:"address"`
	Status            string          `json:"status"`
	Specialization    string          `json:"specialization"`
	Specialties       []LocalizedText `json:"specialties,omitempty"`
	SpecialWords      []LocalizedText `json:"specialWords,omitempty"`
	Bio               LocalizedText   `json:"bio"`
	YearsOfExperience int             `json:"yearsOfExperience"`
	Clinics           []string        `json:"clinics"`
	Schedules         []ScheduleEntry `json:"schedules,omitempty"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type ScheduleEntry struct {
	Clinic    string   `json:"clinic,omitempty"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
}
