package report

type ReportEmployee struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	HireDate string `json:"hire_date"`
}

type DepartmentGroup struct {
	Department string           `json:"department"`
	Employees  []ReportEmployee `json:"employees"`
}

type ProjectAssignmentSummary struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	AssignedDate string `json:"assigned_date"`
}

type ProjectSummary struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	StartDate   string                     `json:"start_date"`
	EndDate     *string                    `json:"end_date,omitempty"`
	Assignments []ProjectAssignmentSummary `json:"assignments"`
}

type LeaveSummaryItem struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveType    string  `json:"leave_type"`
	Status       string  `json:"status"`
	RequestDate  string  `json:"request_date"`
}
