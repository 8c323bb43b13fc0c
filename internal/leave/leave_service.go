package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/events"
	leaveerrors "github.com/Slawuu/Company-manager/internal/leave/errors"
	"github.com/Slawuu/Company-manager/internal/messaging/kafka"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/shared/contextutil"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, p authz.Principal, req SubmitLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, p authz.Principal) ([]LeaveResponse, error)
	GetByID(ctx context.Context, p authz.Principal, id string) (LeaveResponse, error)
	// Approve and Reject return nil when the id does not exist; the
	// decision of an absent request is a no-op, not an error.
	Approve(ctx context.Context, p authz.Principal, id string, req DecisionRequest) (*LeaveResponse, error)
	Reject(ctx context.Context, p authz.Principal, id string, req DecisionRequest) (*LeaveResponse, error)
	Delete(ctx context.Context, p authz.Principal, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver visibility.Resolver
	dir      visibility.Directory
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	resolver visibility.Resolver,
	dir visibility.Directory,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		dir:      dir,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, p authz.Principal, req SubmitLeaveRequest) (LeaveResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrEndBeforeStart
	}

	employeeID, err := s.resolveTarget(ctx, p, req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		// Status is never taken from the caller.
		Status:      StatusPending,
		RequestDate: time.Now().UTC(),
	}
	if err := qtx.Create(ctx, lr); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.String("actor_account_id", p.AccountID.String()),
	)
	return mapToResponse(*lr), nil
}

// resolveTarget picks the employee the request is filed for. Admin/HR may
// file on behalf of any employee; everyone else files for the employee
// record linked to their own account, whatever the payload says.
func (s *service) resolveTarget(ctx context.Context, p authz.Principal, requested *string) (uuid.UUID, error) {
	if p.HasAnyRole(authz.SubmitOnBehalfRoles...) && requested != nil && *requested != "" {
		employeeID, err := uuid.Parse(*requested)
		if err != nil {
			return uuid.Nil, leaveerrors.ErrInvalidEmployeeID
		}
		exists, err := s.repo.EmployeeExists(ctx, employeeID)
		if err != nil {
			return uuid.Nil, err
		}
		if !exists {
			return uuid.Nil, leaveerrors.ErrEmployeeNotFound
		}
		return employeeID, nil
	}

	ref, err := s.dir.FindRefByAccountID(ctx, p.AccountID)
	if err != nil {
		return uuid.Nil, err
	}
	if ref == nil {
		return uuid.Nil, leaveerrors.ErrUnresolvedIdentity
	}
	return ref.ID, nil
}

func (s *service) List(ctx context.Context, p authz.Principal) ([]LeaveResponse, error) {
	scope, err := s.resolver.LeaveScope(ctx, p)
	if err != nil {
		return nil, err
	}
	if scope.IsNone() {
		return []LeaveResponse{}, nil
	}

	lrs, err := s.repo.FindAllScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(lrs), nil
}

func (s *service) GetByID(ctx context.Context, p authz.Principal, id string) (LeaveResponse, error) {
	scope, err := s.resolver.LeaveScope(ctx, p)
	if err != nil {
		return LeaveResponse{}, err
	}

	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	// Out-of-scope rows are indistinguishable from absent ones.
	if !scope.Matches(lr.EmployeeID) {
		return LeaveResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}
	return mapToResponse(*lr), nil
}

func (s *service) Approve(ctx context.Context, p authz.Principal, id string, req DecisionRequest) (*LeaveResponse, error) {
	return s.decide(ctx, p, id, StatusApproved, req.Comments)
}

func (s *service) Reject(ctx context.Context, p authz.Principal, id string, req DecisionRequest) (*LeaveResponse, error) {
	return s.decide(ctx, p, id, StatusRejected, req.Comments)
}

// decide records the approval or rejection. An already-decided request is
// overwritten in place, including a flip of the outcome; concurrent
// decisions resolve last-writer-wins. Both are the system's current
// contract, covered by tests.
func (s *service) decide(ctx context.Context, p authz.Principal, id string, status Status, comments string) (*LeaveResponse, error) {
	// The route policy already gates decisions; enforcing it here too keeps
	// the rule intact for in-process callers.
	if !p.HasAnyRole(authz.LeaveDecisionRoles...) {
		return nil, apperror.ErrForbidden
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Debug("decision on absent leave request ignored",
			zap.String("leave_request_id", id),
			zap.String("actor_account_id", p.AccountID.String()),
		)
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if lr.Status != StatusPending {
		s.logger.Warn("re-deciding an already decided leave request",
			zap.String("leave_request_id", id),
			zap.String("previous_status", lr.Status.String()),
			zap.String("new_status", status.String()),
			zap.String("actor_account_id", p.AccountID.String()),
		)
	}

	now := time.Now().UTC()
	lr.Status = status
	lr.ApproverAccountID = &p.AccountID
	lr.DecidedAt = &now
	lr.Comments = comments

	if err := qtx.Update(ctx, lr); err != nil {
		return nil, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventType:         "leave_decided",
			RequestID:         rid,
			LeaveRequestID:    lr.ID.String(),
			EmployeeID:        lr.EmployeeID.String(),
			Status:            status.String(),
			ApproverAccountID: p.AccountID.String(),
			OccurredAt:        now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "leave_request",
			AggregateID:   lr.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("leave request decided",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("status", status.String()),
		zap.String("approver_account_id", p.AccountID.String()),
	)

	resp := mapToResponse(*lr)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, p authz.Principal, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("leave request deleted",
		zap.String("leave_request_id", id),
		zap.String("actor_account_id", p.AccountID.String()),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveRequestNotFound
	}
	return err
}
