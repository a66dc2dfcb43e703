package requests

// Clinic is optional: general doctors may keep clinic-less schedule
// entries, specialized doctors are checked in ValidateSchedules.
type ScheduleEntry struct {
	Clinic    string   `json:"clinic" validate:"omitempty,len=24"`
	Days      []string `json:"days" validate:"required,min=1,dive,weekday"`
	StartTime string   `json:"startTime" validate:"omitempty,clock_time"`
	EndTime   string   `json:"endTime" validate:"omitempty,clock_time"`
}

type CreateDoctor struct {
	Name              string          `json:"name" validate:"required,min=2,max=100"`
	Email             string          `json:"email" validate:"required,email"`
	Phone             string          `json:"phone" validate:"omitempty,numeric"`
	Address           string          `json:"address" validate:"required,max=300"`
	Status            string          `json:"status" validate:"omitempty,oneof=available unavailable"`
	Specialization    string          `json:"specialization" validate:"required,specialization"`
	Specialties       []string        `json:"specialties" validate:"omitempty,dive,min=2"`
	SpecialWords      []string        `json:"specialWords" validate:"required,min=1,dive,min=2"`
	Bio               string          `json:"bio" validate:"omitempty,max=2000"`
	YearsOfExperience int             `json:"yearsOfExperience" validate:"gte=0"`
	Clinics           []string        `json:"clinics" validate:"required,min=1"`
	Schedules         []ScheduleEntry `json:"schedules" validate:"omitempty,dive"`
}

type UpdateDoctor struct {
	Name              string          `json:"name" validate:"omitempty,min=2,max=100"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Phone             string          `json:"phone" validate:"omitempty,numeric"`
	Address           string          `json:"address" validate:"omitempty,max=300"`
	Status            string          `json:"status" validate:"omitempty,oneof=available unavailable"`
	Specialization    string          `json:"specialization" validate:"omitempty,specialization"`
	Specialties       []string        `json:"specialties" validate:"omitempty,dive,min=2"`
	SpecialWords      []string        `json:"specialWords" validate:"omitempty,min=1,dive,min=2"`
	Bio               string          `json:"bio" validate:"omitempty,max=2000"`
	YearsOfExperience *int            `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Clinics           []string        `json:"clinics" validate:"omitempty,min=1"`
	Schedules         []ScheduleEntry `json:"schedules" validate:"omitempty,dive"`
}
