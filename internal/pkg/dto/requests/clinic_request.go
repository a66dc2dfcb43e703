package requests

type CreateClinic struct {
	Name                  string   `json:"name" validate:"required,min=2,max=100"`
	Description           string   `json:"description" validate:"omitempty,max=2000"`
	Address               string   `json:"address" validate:"omitempty,max=300"`
	Phone                 string   `json:"phone" validate:"omitempty,numeric"`
	Email                 string   `json:"email" validate:"omitempty,email"`
	Status                string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Specialization        string   `json:"specialization" validate:"required,specialization"`
	Specialties           []string `json:"specialties" validate:"omitempty,dive,min=2"`
	SpecialWords          []string `json:"specialWords" validate:"omitempty,dive,min=2"`
	AvailableDays         []string `json:"availableDays" validate:"required,min=1,dive,weekday"`
	Price                 float64  `json:"price" validate:"omitempty,gte=0"`
	IsAvailableForBooking *bool    `json:"isAvailableForBooking" validate:"required"`
}

type UpdateClinic struct {
	Name                  string   `json:"name" validate:"omitempty,min=2,max=100"`
	Description           string   `json:"description" validate:"omitempty,max=2000"`
	Address               string   `json:"address" validate:"omitempty,max=300"`
	Phone                 string   `json:"phone" validate:"omitempty,numeric"`
	Email                 string   `json:"email" validate:"omitempty,email"`
	Status                string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Specialization        string   `json:"specialization" validate:"omitempty,specialization"`
	Specialties           []string `json:"specialties" validate:"omitempty,dive,min=2"`
	SpecialWords          []string `json:"specialWords" validate:"omitempty,dive,min=2"`
	AvailableDays         []string `json:"availableDays" validate:"omitempty,min=1,dive,weekday"`
	Price                 *float64 `json:"price" validate:"omitempty,gte=0"`
	IsAvailableForBooking *bool    `json:"isAvailableForBooking"`
}

type AddDoctorsToClinic struct {
	DoctorIDs []string `json:"doctorIds" validate:"required,min=1"`
}
