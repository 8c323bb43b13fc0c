package profile

import "time"

type UpdateProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}

type ProfileProject struct {
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	AssignedDate string `json:"assigned_date"`
}

type ProfileLeaveRequest struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	LeaveType   string `json:"leave_type"`
	Status      string `json:"status"`
	RequestDate string `json:"request_date"`
}

type ProfileResponse struct {
	EmployeeID     string                `json:"employee_id"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	Email          string                `json:"email"`
	Phone          *string               `json:"phone,omitempty"`
	Position       string                `json:"position"`
	HireDate       string                `json:"hire_date"`
	DepartmentName *string               `json:"department_name,omitempty"`
	Projects       []ProfileProject      `json:"projects"`
	LeaveRequests  []ProfileLeaveRequest `json:"leave_requests"`
}

func formatRequestDate(t time.Time) string {
	return t.Format(time.RFC3339)
}
