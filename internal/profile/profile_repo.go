package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/leave"
	"github.com/Slawuu/Company-manager/internal/project"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindByAccountID returns (nil, nil) when no employee record is
	// linked to the account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*employee.Employee, error)
	ProjectsFor(ctx context.Context, employeeID uuid.UUID) ([]project.ProjectAssignment, error)
	LeaveRequestsFor(ctx context.Context, employeeID uuid.UUID) ([]leave.LeaveRequest, error)
	EmailTakenByOther(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	PhoneTakenByOther(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	UpdateContact(ctx context.Context, employeeID uuid.UUID, email string, phone *string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*employee.Employee, error) {
	var empl employee.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Take(&empl, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ProjectsFor(ctx context.Context, employeeID uuid.UUID) ([]project.ProjectAssignment, error) {
	var assignments []project.ProjectAssignment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("employee_id = ?", employeeID).
		Order("assigned_date DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) LeaveRequestsFor(ctx context.Context, employeeID uuid.UUID) ([]leave.LeaveRequest, error) {
	var lrs []leave.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("request_date DESC").
		Find(&lrs).Error
	return lrs, err
}

func (r *repository) EmailTakenByOther(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("email = ?", email).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) PhoneTakenByOther(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("phone = ?", phone).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

// UpdateContact writes only the self-editable fields.
func (r *repository) UpdateContact(ctx context.Context, employeeID uuid.UUID, email string, phone *string) error {
	return r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{"email": email, "phone": phone}).Error
}
