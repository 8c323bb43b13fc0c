package project

import (
	"time"

	"github.com/Slawuu/Company-manager/internal/employee"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`

	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`

	// Account id of the managing user, lookup only, not a FK.
	ManagerAccountID *uuid.UUID `gorm:"type:uuid"`

	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectAssignment is the employee/project join row. One row per pair;
// the composite unique index rejects double assignment.
type ProjectAssignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_employee"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_employee"`
	AssignedDate time.Time `gorm:"type:date;not null"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
	Project  *Project           `gorm:"foreignKey:ProjectID"`
}
