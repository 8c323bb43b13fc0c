package employee

import (
	"context"
	"database/sql"

	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter carries the optional user-supplied criteria applied on top
// of the visibility scope, in this order: free-text name match, exact
// department, exact position. Each is a no-op when empty.
type ListFilter struct {
	Search       string
	DepartmentID *uuid.UUID
	Position     string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllScoped(ctx context.Context, scope visibility.EmployeeScope, filter ListFilter) ([]Employee, error)
	DistinctPositions(ctx context.Context, scope visibility.EmployeeScope) ([]string, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	EmailTakenByOther(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	PhoneTakenByOther(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	DeleteCascade(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAllScoped(ctx context.Context, scope visibility.EmployeeScope, filter ListFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(scope.Scope())

	if filter.Search != "" {
		// case-sensitive substring match over both name fields
		pattern := "%" + filter.Search + "%"
		db = db.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if filter.DepartmentID != nil {
		db = db.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Position != "" {
		db = db.Where("position = ?", filter.Position)
	}

	var empls []Employee
	err := db.Order("last_name ASC").Find(&empls).Error
	return empls, err
}

// DistinctPositions returns the filter vocabulary computed from the same
// visible row set, so a restricted viewer never sees positions belonging
// to employees outside their department.
func (r *repository) DistinctPositions(ctx context.Context, scope visibility.EmployeeScope) ([]string, error) {
	var positions []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Scope()).
		Distinct("position").
		Order("position ASC").
		Pluck("position", &positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) EmailTakenByOther(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) PhoneTakenByOther(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("phone = ?", phone).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

// DeleteCascade removes the employee together with its project
// assignments and leave requests. The linked identity account is not
// touched.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Table("project_assignments").
		Where("employee_id = ?", id).
		Delete(nil).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Table("leave_requests").
		Where("employee_id = ?", id).
		Delete(nil).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
