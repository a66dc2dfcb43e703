package requests

type UpdateUser struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone   string `json:"phone" validate:"omitempty,numeric"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Role    string `json:"role" validate:"omitempty,oneof=user admin"`
}
