package friend

type Friend struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type AddRequest struct {
	Identifier string `json:"identifier"`
}
