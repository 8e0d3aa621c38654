package employee

type EmployeeResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"nome"`
	JobTitle string `json:"cargo"`
	HireDate string `json:"data_admissao"`
	Role     string `json:"tipo"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID.String(),
		Email:    e.Email,
		Name:     e.Name,
		JobTitle: e.JobTitle,
		HireDate: e.HireDate.UTC().Format("2006-01-02"),
		Role:     e.Role,
	}
}
