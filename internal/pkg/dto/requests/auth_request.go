package requests

type RegisterUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,numeric"`
	Address  string `json:"address" validate:"omitempty,max=300"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

// Token arrives in the URL path, not the body.
type ResetPassword struct {
	Token    string `json:"-" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
