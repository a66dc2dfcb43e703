package responses

type Register struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Login struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
