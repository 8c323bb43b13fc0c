package project

type CreateProjectRequest struct {
	Name             string  `json:"name" binding:"required,max=150"`
	Description      string  `json:"description" binding:"max=2000"`
	StartDate        string  `json:"start_date" binding:"required"`
	EndDate          *string `json:"end_date"`
	ManagerAccountID *string `json:"manager_account_id" binding:"omitempty,uuid"`
}

type UpdateProjectRequest struct {
	Name             string  `json:"name" binding:"required,max=150"`
	Description      string  `json:"description" binding:"max=2000"`
	StartDate        string  `json:"start_date" binding:"required"`
	EndDate          *string `json:"end_date"`
	ManagerAccountID *string `json:"manager_account_id" binding:"omitempty,uuid"`
}

type AssignEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type AssignmentResponse struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	AssignedDate string `json:"assigned_date"`
}

type ProjectResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	StartDate        string               `json:"start_date"`
	EndDate          *string              `json:"end_date,omitempty"`
	ManagerAccountID *string              `json:"manager_account_id,omitempty"`
	Assignments      []AssignmentResponse `json:"assignments"`
}

type AvailableEmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}
