package visibility

import (
	"context"
	"errors"

	"github.com/Slawuu/Company-manager/internal/authz"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeRef is the minimal slice of an employee record the resolver
// needs: its id and department membership.
type EmployeeRef struct {
	ID           uuid.UUID
	DepartmentID *uuid.UUID
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock

// Directory looks up the employee record linked to an account.
// Returns (nil, nil) when no linked record exists.
type Directory interface {
	FindRefByAccountID(ctx context.Context, accountID uuid.UUID) (*EmployeeRef, error)
}

// Resolver computes, per principal, which employee and leave-request rows
// are readable before any user-supplied criteria are applied.
type Resolver interface {
	EmployeeScope(ctx context.Context, p authz.Principal) (EmployeeScope, error)
	LeaveScope(ctx context.Context, p authz.Principal) (LeaveScope, error)
}

type resolver struct {
	dir    Directory
	logger *zap.Logger
}

func NewResolver(dir Directory, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("visibility.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("visibility.resolver")
	}
	return &resolver{dir: dir, logger: l}
}

func (r *resolver) EmployeeScope(ctx context.Context, p authz.Principal) (EmployeeScope, error) {
	// Elevation is role-derived, never identity-row-derived: an elevated
	// principal keeps full visibility even if its employee row is gone.
	if p.HasAnyRole(authz.EmployeeVisibilityRoles...) {
		return AllEmployees(), nil
	}

	ref, err := r.dir.FindRefByAccountID(ctx, p.AccountID)
	if err != nil {
		r.logger.Error("resolve employee scope failed",
			zap.String("account_id", p.AccountID.String()),
			zap.Error(err),
		)
		return NoEmployees(), err
	}
	if ref == nil || ref.DepartmentID == nil {
		return NoEmployees(), nil
	}
	return DepartmentOnly(*ref.DepartmentID), nil
}

func (r *resolver) LeaveScope(ctx context.Context, p authz.Principal) (LeaveScope, error) {
	if p.HasAnyRole(authz.LeaveVisibilityRoles...) {
		return AllLeaveRequests(), nil
	}

	ref, err := r.dir.FindRefByAccountID(ctx, p.AccountID)
	if err != nil {
		r.logger.Error("resolve leave scope failed",
			zap.String("account_id", p.AccountID.String()),
			zap.Error(err),
		)
		return NoLeaveRequests(), err
	}
	if ref == nil {
		return NoLeaveRequests(), nil
	}
	return OwnLeaveRequests(ref.ID), nil
}

type gormDirectory struct {
	db *gorm.DB
}

// NewDirectory returns a Directory backed by the employees table.
func NewDirectory(db *gorm.DB) Directory {
	return &gormDirectory{db: db}
}

func (d *gormDirectory) FindRefByAccountID(ctx context.Context, accountID uuid.UUID) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := d.db.WithContext(ctx).
		Table("employees").
		Select("id", "department_id").
		Where("account_id = ?", accountID).
		Take(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
