package employee

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	Position     string  `json:"position" binding:"required,max=100"`
	Salary       float64 `json:"salary" binding:"gte=0"`
	HireDate     string  `json:"hire_date" binding:"required"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`

	// Credentials for the paired identity account.
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=ADMIN HR MANAGER EMPLOYEE"`
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	Position     string  `json:"position" binding:"required,max=100"`
	Salary       float64 `json:"salary" binding:"gte=0"`
	HireDate     string  `json:"hire_date" binding:"required"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

type ListQuery struct {
	Search       string `form:"search"`
	DepartmentID string `form:"department_id"`
	Position     string `form:"position"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Position       string  `json:"position"`
	Salary         float64 `json:"salary"`
	HireDate       string  `json:"hire_date"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	AccountID      *string `json:"account_id,omitempty"`
	Role           *string `json:"role,omitempty"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`

	// Positions is the filter vocabulary, scoped to the same visible rows.
	Positions []string `json:"positions"`
}
