package leave

import (
	"context"
	"database/sql"

	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	FindAllScoped(ctx context.Context, scope visibility.LeaveScope) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
	Update(ctx context.Context, lr *LeaveRequest) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction; every
// statement built afterwards runs on tx, not the pool.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindAllScoped(ctx context.Context, scope visibility.LeaveScope) ([]LeaveRequest, error) {
	var lrs []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope.Scope()).
		Order("request_date DESC").
		Find(&lrs).Error
	return lrs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).
		Omit("Employee").
		Save(lr).Error
}

// Delete is unconditional; deleting an absent id is not an error.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveRequest{}, "id = ?", id).Error
}
