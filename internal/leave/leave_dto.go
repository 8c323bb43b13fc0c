package leave

import "time"

type SubmitLeaveRequest struct {
	// EmployeeID is honored for Admin/HR submissions on behalf of someone
	// else; for everyone else it is ignored.
	EmployeeID *string `json:"employee_id" binding:"omitempty,uuid"`

	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	LeaveType string `json:"leave_type" binding:"required,max=50"`
	Reason    string `json:"reason" binding:"max=2000"`
}

type DecisionRequest struct {
	Comments string `json:"comments" binding:"max=2000"`
}

type LeaveResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	LeaveType         string  `json:"leave_type"`
	Reason            string  `json:"reason,omitempty"`
	Status            string  `json:"status"`
	ApproverAccountID *string `json:"approver_account_id,omitempty"`
	DecidedAt         *string `json:"decided_at,omitempty"`
	Comments          string  `json:"comments,omitempty"`
	RequestDate       string  `json:"request_date"`
}

func mapToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          lr.ID.String(),
		EmployeeID:  lr.EmployeeID.String(),
		StartDate:   lr.StartDate.Format("2006-01-02"),
		EndDate:     lr.EndDate.Format("2006-01-02"),
		LeaveType:   lr.LeaveType,
		Reason:      lr.Reason,
		Status:      lr.Status.String(),
		Comments:    lr.Comments,
		RequestDate: lr.RequestDate.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		v := lr.Employee.FullName()
		resp.EmployeeName = &v
	}
	if lr.ApproverAccountID != nil {
		v := lr.ApproverAccountID.String()
		resp.ApproverAccountID = &v
	}
	if lr.DecidedAt != nil {
		v := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(lrs []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(lrs))
	for i, lr := range lrs {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
