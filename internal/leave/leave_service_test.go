package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/leave"
	leaveerrors "github.com/Slawuu/Company-manager/internal/leave/errors"
	leaveMock "github.com/Slawuu/Company-manager/internal/leave/mock"
	"github.com/Slawuu/Company-manager/internal/messaging/kafka"
	kafkaMock "github.com/Slawuu/Company-manager/internal/messaging/kafka/mock"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/visibility"
	visibilityMock "github.com/Slawuu/Company-manager/internal/visibility/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  leave.Service
	repo     *leaveMock.MockRepository
	resolver *visibilityMock.MockResolver
	dir      *visibilityMock.MockDirectory
	outbox   *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	resolver := visibilityMock.NewMockResolver(ctrl)
	dir := visibilityMock.NewMockDirectory(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := leave.NewService(db, repo, resolver, dir, outbox)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		resolver: resolver,
		dir:      dir,
		outbox:   outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func employeePrincipal() authz.Principal {
	return authz.Principal{AccountID: uuid.New(), Role: authz.RoleEmployee}
}

func managerPrincipal() authz.Principal {
	return authz.Principal{AccountID: uuid.New(), Role: authz.RoleManager}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("status is forced to pending and request date is stamped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		ownID := uuid.New()

		deps.dir.EXPECT().
			FindRefByAccountID(ctx, p.AccountID).
			Return(&visibility.EmployeeRef{ID: ownID}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lr *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPending, lr.Status)
				assert.Equal(t, ownID, lr.EmployeeID)
				assert.False(t, lr.RequestDate.IsZero())
				assert.Nil(t, lr.ApproverAccountID)
				return nil
			})

		resp, err := deps.service.Submit(ctx, p, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-05",
			LeaveType: "vacation",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("non-elevated caller cannot submit for someone else", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		ownID := uuid.New()
		otherID := uuid.New().String()

		deps.dir.EXPECT().
			FindRefByAccountID(ctx, p.AccountID).
			Return(&visibility.EmployeeRef{ID: ownID}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lr *leave.LeaveRequest) error {
				// the payload's employee id is silently overridden
				assert.Equal(t, ownID, lr.EmployeeID)
				return nil
			})

		resp, err := deps.service.Submit(ctx, p, leave.SubmitLeaveRequest{
			EmployeeID: &otherID,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
			LeaveType:  "sick",
		})

		assert.NoError(t, err)
		assert.Equal(t, ownID.String(), resp.EmployeeID)
	})

	t.Run("no linked employee record -> unresolved identity", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()

		deps.dir.EXPECT().
			FindRefByAccountID(ctx, p.AccountID).
			Return(nil, nil)

		_, err := deps.service.Submit(ctx, p, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
			LeaveType: "sick",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrUnresolvedIdentity)
	})

	t.Run("admin submits on behalf of another employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleAdmin}
		targetID := uuid.New()
		target := targetID.String()

		deps.repo.EXPECT().
			EmployeeExists(ctx, targetID).
			Return(true, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lr *leave.LeaveRequest) error {
				assert.Equal(t, targetID, lr.EmployeeID)
				return nil
			})

		resp, err := deps.service.Submit(ctx, p, leave.SubmitLeaveRequest{
			EmployeeID: &target,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
			LeaveType:  "vacation",
		})

		assert.NoError(t, err)
		assert.Equal(t, target, resp.EmployeeID)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, employeePrincipal(), leave.SubmitLeaveRequest{
			StartDate: "2026-09-05",
			EndDate:   "2026-09-01",
			LeaveType: "vacation",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEndBeforeStart)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:          uuid.New(),
			EmployeeID:  uuid.New(),
			StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			LeaveType:   "vacation",
			Status:      leave.StatusPending,
			RequestDate: time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
		}
	}

	t.Run("approve sets decision fields and stages the event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := managerPrincipal()
		lr := pendingRequest()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, lr.ID.String()).Return(lr, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, updated *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusApproved, updated.Status)
				assert.Equal(t, p.AccountID, *updated.ApproverAccountID)
				assert.NotNil(t, updated.DecidedAt)
				assert.Equal(t, "looks fine", updated.Comments)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "hr.leave.decided", event.Topic)
				assert.Equal(t, "leave_decided", event.EventType)
				assert.Equal(t, lr.ID.String(), event.AggregateID)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Approve(ctx, p, lr.ID.String(), leave.DecisionRequest{Comments: "looks fine"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("non-elevated caller cannot decide", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// no repo or tx expectations: the gate fires before anything else
		_, err := deps.service.Approve(ctx, employeePrincipal(), uuid.New().String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("deciding an absent request is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Approve(ctx, managerPrincipal(), id, leave.DecisionRequest{})

		assert.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("re-deciding overwrites the previous outcome", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := managerPrincipal()
		firstApprover := uuid.New()
		decidedAt := time.Date(2026, 2, 21, 9, 0, 0, 0, time.UTC)

		lr := pendingRequest()
		lr.Status = leave.StatusApproved
		lr.ApproverAccountID = &firstApprover
		lr.DecidedAt = &decidedAt
		lr.Comments = "approved earlier"

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, lr.ID.String()).Return(lr, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, updated *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusRejected, updated.Status)
				assert.Equal(t, p.AccountID, *updated.ApproverAccountID)
				assert.Equal(t, "changed my mind", updated.Comments)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Reject(ctx, p, lr.ID.String(), leave.DecisionRequest{Comments: "changed my mind"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "REJECTED", resp.Status)
	})

	t.Run("update failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		lr := pendingRequest()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, lr.ID.String()).Return(lr, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Approve(ctx, managerPrincipal(), lr.ID.String(), leave.DecisionRequest{})

		assert.Error(t, err)
	})
}

func TestLeaveService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("none scope yields an empty listing without touching the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.NoLeaveRequests(), nil)

		resp, err := deps.service.List(ctx, p)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("scope is handed to the repository untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		ownID := uuid.New()
		scope := visibility.OwnLeaveRequests(ownID)

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(scope, nil)
		deps.repo.EXPECT().
			FindAllScoped(ctx, scope).
			Return([]leave.LeaveRequest{{ID: uuid.New(), EmployeeID: ownID, Status: leave.StatusPending}}, nil)

		resp, err := deps.service.List(ctx, p)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("a row outside the scope reads as not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		ownID := uuid.New()
		foreign := &leave.LeaveRequest{ID: uuid.New(), EmployeeID: uuid.New()}

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.OwnLeaveRequests(ownID), nil)
		deps.repo.EXPECT().FindByID(ctx, foreign.ID.String()).Return(foreign, nil)

		_, err := deps.service.GetByID(ctx, p, foreign.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveRequestNotFound)
	})

	t.Run("own row is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := employeePrincipal()
		ownID := uuid.New()
		lr := &leave.LeaveRequest{ID: uuid.New(), EmployeeID: ownID, Status: leave.StatusPending}

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.OwnLeaveRequests(ownID), nil)
		deps.repo.EXPECT().FindByID(ctx, lr.ID.String()).Return(lr, nil)

		resp, err := deps.service.GetByID(ctx, p, lr.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, lr.ID.String(), resp.ID)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting an absent id is not an error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		err := deps.service.Delete(ctx, employeePrincipal(), id)

		assert.NoError(t, err)
	})
}
