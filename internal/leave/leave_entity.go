package leave

import (
	"time"

	"github.com/Slawuu/Company-manager/internal/employee"

	"github.com/google/uuid"
)

// Status is the approval state of a leave request. The numeric order is
// load-bearing: report listings sort by it ascending, so pending requests
// always surface first.
type Status int16

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusApproved:
		return "APPROVED"
	case StatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	LeaveType string    `gorm:"type:varchar(50);not null"`
	Reason    string    `gorm:"type:text"`

	Status Status `gorm:"type:smallint;not null;default:0;index"`

	// Decision fields, set together when the request is decided.
	ApproverAccountID *uuid.UUID `gorm:"type:uuid"`
	DecidedAt         *time.Time
	Comments          string `gorm:"type:text"`

	// RequestDate is stamped server-side at submission and never updated.
	RequestDate time.Time `gorm:"not null;index"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
