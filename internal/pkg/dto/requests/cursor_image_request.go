package requests

type CreateCursorImage struct {
	Title       string `json:"title" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Order       *int   `json:"order" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateCursorImage struct {
	Title       string `json:"title" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}
