package requests

type CreateBooking struct {
	ClinicID      string `json:"clinicId" validate:"required"`
	ClientName    string `json:"clientName" validate:"required,min=2,max=100"`
	ClientEmail   string `json:"clientEmail" validate:"required,email"`
	ClientPhone   string `json:"clientPhone" validate:"required,numeric"`
	ClientAddress string `json:"clientAddress" validate:"required,max=300"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required,clock_time"`
	Notes         string `json:"notes" validate:"omitempty,max=1000"`
}
