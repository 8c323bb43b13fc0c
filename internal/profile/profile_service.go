package profile

import (
	"context"
	"database/sql"

	"github.com/Slawuu/Company-manager/internal/authz"
	profileerrors "github.com/Slawuu/Company-manager/internal/profile/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountSync keeps the identity account's login email aligned with the
// profile email.
type AccountSync interface {
	UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) error
}

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, p authz.Principal) (ProfileResponse, error)
	Update(ctx context.Context, p authz.Principal, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	accounts AccountSync
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, accounts AccountSync, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{db: db, repo: repo, accounts: accounts, logger: l}
}

func (s *service) Get(ctx context.Context, p authz.Principal) (ProfileResponse, error) {
	empl, err := s.repo.FindByAccountID(ctx, p.AccountID)
	if err != nil {
		return ProfileResponse{}, err
	}
	if empl == nil {
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	assignments, err := s.repo.ProjectsFor(ctx, empl.ID)
	if err != nil {
		return ProfileResponse{}, err
	}
	lrs, err := s.repo.LeaveRequestsFor(ctx, empl.ID)
	if err != nil {
		return ProfileResponse{}, err
	}

	resp := ProfileResponse{
		EmployeeID:    empl.ID.String(),
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		Email:         empl.Email,
		Phone:         empl.Phone,
		Position:      empl.Position,
		HireDate:      empl.HireDate.Format("2006-01-02"),
		Projects:      make([]ProfileProject, len(assignments)),
		LeaveRequests: make([]ProfileLeaveRequest, len(lrs)),
	}
	if empl.Department != nil {
		v := empl.Department.Name
		resp.DepartmentName = &v
	}
	for i, a := range assignments {
		pp := ProfileProject{
			ProjectID:    a.ProjectID.String(),
			AssignedDate: a.AssignedDate.Format("2006-01-02"),
		}
		if a.Project != nil {
			pp.Name = a.Project.Name
		}
		resp.Projects[i] = pp
	}
	for i, lr := range lrs {
		resp.LeaveRequests[i] = ProfileLeaveRequest{
			ID:          lr.ID.String(),
			StartDate:   lr.StartDate.Format("2006-01-02"),
			EndDate:     lr.EndDate.Format("2006-01-02"),
			LeaveType:   lr.LeaveType,
			Status:      lr.Status.String(),
			RequestDate: formatRequestDate(lr.RequestDate),
		}
	}
	return resp, nil
}

// Update edits the self-service contact fields only. Everything else on
// the employee record belongs to Admin/HR through the employee module.
func (s *service) Update(ctx context.Context, p authz.Principal, req UpdateProfileRequest) (ProfileResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByAccountID(ctx, p.AccountID)
	if err != nil {
		return ProfileResponse{}, err
	}
	if empl == nil {
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	taken, err := qtx.EmailTakenByOther(ctx, req.Email, empl.ID)
	if err != nil {
		return ProfileResponse{}, err
	}
	if taken {
		return ProfileResponse{}, profileerrors.ErrEmailTaken
	}

	if req.Phone != nil && *req.Phone != "" {
		taken, err := qtx.PhoneTakenByOther(ctx, *req.Phone, empl.ID)
		if err != nil {
			return ProfileResponse{}, err
		}
		if taken {
			return ProfileResponse{}, profileerrors.ErrPhoneTaken
		}
	}

	emailChanged := empl.Email != req.Email

	if err := qtx.UpdateContact(ctx, empl.ID, req.Email, req.Phone); err != nil {
		return ProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	if emailChanged && empl.AccountID != nil {
		if err := s.accounts.UpdateEmail(ctx, *empl.AccountID, req.Email); err != nil {
			s.logger.Error("sync account email failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("profile updated", zap.String("employee_id", empl.ID.String()))
	return s.Get(ctx, p)
}
