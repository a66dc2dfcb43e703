package requests

type CreateTestimonial struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	JobTitle string `json:"jobTitle" validate:"omitempty,max=100"`
	Text     string `json:"text" validate:"required,min=5,max=10000"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type UpdateTestimonial struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=50"`
	JobTitle string `json:"jobTitle" validate:"omitempty,max=100"`
	Text     string `json:"text" validate:"omitempty,min=5,max=10000"`
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}
