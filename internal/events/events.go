package events

import "time"

const (
	EmployeeCreatedTopic = "hr.employee.created"
	LeaveDecidedTopic    = "hr.leave.decided"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent is written to the outbox in the same transaction as
// the decision; delivery to interested parties is asynchronous and not
// atomic with the decision itself.
type LeaveDecidedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	LeaveRequestID    string    `json:"leave_request_id"`
	EmployeeID        string    `json:"employee_id"`
	Status            string    `json:"status"`
	ApproverAccountID string    `json:"approver_account_id"`
	OccurredAt        time.Time `json:"occurred_at"`
}
