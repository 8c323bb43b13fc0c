package department

type CreateDepartmentRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Description      string  `json:"description" binding:"max=500"`
	ManagerAccountID *string `json:"manager_account_id"`
}

type UpdateDepartmentRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Description      string  `json:"description" binding:"max=500"`
	ManagerAccountID *string `json:"manager_account_id"`
}

type DepartmentResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	ManagerAccountID *string `json:"manager_account_id,omitempty"`
}
