package report

import (
	"context"
	"time"

	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/leave"
	"github.com/Slawuu/Company-manager/internal/project"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	EmployeesWithDepartment(ctx context.Context) ([]employee.Employee, error)
	HiredBetween(ctx context.Context, start, end *time.Time) ([]employee.Employee, error)
	ProjectsWithAssignments(ctx context.Context) ([]project.Project, error)
	LeaveRequestsScoped(ctx context.Context, scope visibility.LeaveScope) ([]leave.LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmployeesWithDepartment(ctx context.Context) ([]employee.Employee, error) {
	var empls []employee.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("department_id IS NOT NULL").
		Order("last_name ASC").
		Find(&empls).Error
	return empls, err
}

// HiredBetween applies each bound only when present; both bounds are
// inclusive.
func (r *repository) HiredBetween(ctx context.Context, start, end *time.Time) ([]employee.Employee, error) {
	db := r.db.WithContext(ctx).Preload("Department")
	if start != nil {
		db = db.Where("hire_date >= ?", *start)
	}
	if end != nil {
		db = db.Where("hire_date <= ?", *end)
	}

	var empls []employee.Employee
	err := db.Order("hire_date DESC").Find(&empls).Error
	return empls, err
}

func (r *repository) ProjectsWithAssignments(ctx context.Context) ([]project.Project, error) {
	var projs []project.Project
	err := r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Order("start_date DESC").
		Find(&projs).Error
	return projs, err
}

// LeaveRequestsScoped fetches the visible rows; year filtering and the
// status/date ordering are composed in the service.
func (r *repository) LeaveRequestsScoped(ctx context.Context, scope visibility.LeaveScope) ([]leave.LeaveRequest, error) {
	var lrs []leave.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope.Scope()).
		Find(&lrs).Error
	return lrs, err
}
