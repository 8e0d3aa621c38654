package auth

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6"`
	Name     string `json:"nome" binding:"required"`
	JobTitle string `json:"cargo" binding:"required"`
	HireDate string `json:"data_admissao" binding:"required"`
	Role     string `json:"tipo"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"nome"`
	JobTitle string `json:"cargo"`
	HireDate string `json:"data_admissao"`
	Role     string `json:"tipo"`
}
