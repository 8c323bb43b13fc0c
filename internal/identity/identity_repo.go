package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=identity_repo.go -destination=mock/identity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	RolesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	EmployeeIDByAccount(ctx context.Context, accountID uuid.UUID) (*uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, account *Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	return &account, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	return &account, err
}

func (r *repository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("email", email).Error
}

func (r *repository) RolesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var rows []struct {
		ID   uuid.UUID
		Role string
	}
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Select("id", "role").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	roles := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		roles[row.ID] = row.Role
	}
	return roles, nil
}

// EmployeeIDByAccount resolves the employee record linked to an account.
// The linkage lives on the employees side only.
func (r *repository) EmployeeIDByAccount(ctx context.Context, accountID uuid.UUID) (*uuid.UUID, error) {
	var employeeID uuid.UUID
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id").
		Where("account_id = ?", accountID).
		Take(&employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employeeID, nil
}
