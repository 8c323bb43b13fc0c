package project

import (
	"context"
	"database/sql"

	"github.com/Slawuu/Company-manager/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, proj *Project) error
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
	AssignmentExists(ctx context.Context, projectID, employeeID uuid.UUID) (bool, error)
	CreateAssignment(ctx context.Context, assignment *ProjectAssignment) error
	DeleteAssignment(ctx context.Context, projectID, employeeID uuid.UUID) (bool, error)
	AvailableEmployees(ctx context.Context, projectID uuid.UUID) ([]employee.Employee, error)
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

func (r *repository) Create(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Create(proj).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var projs []Project
	err := r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Order("start_date DESC").
		Find(&projs).Error
	return projs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var proj Project
	err := r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		First(&proj, "id = ?", id).Error
	return &proj, err
}

func (r *repository) Update(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).
		Omit("Assignments").
		Save(proj).Error
}

// Delete removes the project together with its assignment rows. Assigned
// employees themselves are untouched.
func (r *repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Delete(&ProjectAssignment{}, "project_id = ?", id).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AssignmentExists(ctx context.Context, projectID, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProjectAssignment{}).
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAssignment(ctx context.Context, assignment *ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// DeleteAssignment reports whether a row was actually removed, so the
// service can distinguish a real unassignment from a stale request.
func (r *repository) DeleteAssignment(ctx context.Context, projectID, employeeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Delete(&ProjectAssignment{}, "project_id = ? AND employee_id = ?", projectID, employeeID)
	return result.RowsAffected > 0, result.Error
}

// AvailableEmployees lists employees not yet assigned to the project,
// as candidates for a new assignment.
func (r *repository) AvailableEmployees(ctx context.Context, projectID uuid.UUID) ([]employee.Employee, error) {
	var empls []employee.Employee
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id NOT IN (?)",
			r.db.Table("project_assignments").
				Select("employee_id").
				Where("project_id = ?", projectID),
		).
		Order("last_name ASC").
		Find(&empls).Error
	return empls, err
}
