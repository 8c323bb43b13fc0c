package employee

import (
	"time"

	"github.com/Slawuu/Company-manager/internal/department"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(50);not null"`
	LastName  string    `gorm:"type:varchar(50);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     *string   `gorm:"type:varchar(30);uniqueIndex"`

	Position string    `gorm:"type:varchar(100);not null"`
	Salary   float64   `gorm:"type:numeric(12,2);not null"`
	HireDate time.Time `gorm:"type:date;not null;index"`

	DepartmentID *uuid.UUID             `gorm:"type:uuid;index"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`

	// Weak back reference to the identity account. Deleting the employee
	// leaves the account in place.
	AccountID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
