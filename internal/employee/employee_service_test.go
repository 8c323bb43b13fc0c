package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/employee"
	employeeerrors "github.com/Slawuu/Company-manager/internal/employee/errors"
	employeeMock "github.com/Slawuu/Company-manager/internal/employee/mock"
	"github.com/Slawuu/Company-manager/internal/messaging/kafka"
	kafkaMock "github.com/Slawuu/Company-manager/internal/messaging/kafka/mock"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/visibility"
	visibilityMock "github.com/Slawuu/Company-manager/internal/visibility/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   employee.Service
	repo      *employeeMock.MockRepository
	resolver  *visibilityMock.MockResolver
	accounts  *employeeMock.MockAccountStore
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	resolver := visibilityMock.NewMockResolver(ctrl)
	accounts := employeeMock.NewMockAccountStore(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, resolver, accounts, outbox, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
		resolver:  resolver,
		accounts:  accounts,
		outbox:    outbox,
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

func hrPrincipal() authz.Principal {
	return authz.Principal{AccountID: uuid.New(), Role: authz.RoleHR}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Byron",
		Email:     "ada@example.com",
		Position:  "Engineer",
		Salary:    4200,
		HireDate:  "2026-03-01",
		Password:  "s3cret-pass",
		Role:      "EMPLOYEE",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("account is created first and linked to the employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		accountID := uuid.New()

		deps.accounts.EXPECT().
			CreateAccount(ctx, req.Email, req.Password, authz.RoleEmployee).
			Return(accountID, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, accountID, *empl.AccountID)
				assert.Equal(t, "ada@example.com", empl.Email)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "hr.employee.created", event.Topic)
				assert.Equal(t, "employee_created", event.EventType)
				return nil
			})
		deps.redisMock.ExpectDel("employees:positions:all").SetVal(1)

		resp, err := deps.service.Create(ctx, hrPrincipal(), req)

		assert.NoError(t, err)
		assert.Equal(t, accountID.String(), *resp.AccountID)
		assert.Equal(t, "EMPLOYEE", *resp.Role)
	})

	t.Run("unknown role is rejected before anything is written", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Role = "SUPERUSER"

		_, err := deps.service.Create(ctx, hrPrincipal(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})

	t.Run("malformed hire date is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.HireDate = "01/03/2026"

		_, err := deps.service.Create(ctx, hrPrincipal(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unresolved principal gets an empty listing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleEmployee}
		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(visibility.NoEmployees(), nil)

		resp, err := deps.service.List(ctx, p, employee.ListQuery{})

		assert.NoError(t, err)
		assert.Empty(t, resp.Employees)
		assert.Empty(t, resp.Positions)
	})

	t.Run("rows are decorated with the account role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := hrPrincipal()
		accountID := uuid.New()
		scope := visibility.AllEmployees()

		empl := employee.Employee{
			ID:        uuid.New(),
			FirstName: "Ada",
			LastName:  "Byron",
			Email:     "ada@example.com",
			Position:  "Engineer",
			HireDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			AccountID: &accountID,
		}

		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(scope, nil)
		deps.repo.EXPECT().
			FindAllScoped(ctx, scope, employee.ListFilter{}).
			Return([]employee.Employee{empl}, nil)
		deps.redisMock.ExpectGet("employees:positions:all").SetVal(`["Engineer"]`)
		deps.accounts.EXPECT().
			RolesByAccountIDs(ctx, []uuid.UUID{accountID}).
			Return(map[uuid.UUID]authz.Role{accountID: authz.RoleManager}, nil)

		resp, err := deps.service.List(ctx, p, employee.ListQuery{})

		assert.NoError(t, err)
		assert.Len(t, resp.Employees, 1)
		assert.Equal(t, "MANAGER", *resp.Employees[0].Role)
		assert.Equal(t, []string{"Engineer"}, resp.Positions)
	})

	t.Run("malformed department filter is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := hrPrincipal()
		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(visibility.AllEmployees(), nil)

		_, err := deps.service.List(ctx, p, employee.ListQuery{DepartmentID: "not-a-uuid"})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDepartmentID)
	})
}

func TestEmployeeService_PositionOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through to the store and fills the cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := hrPrincipal()
		scope := visibility.AllEmployees()

		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(scope, nil)
		deps.redisMock.ExpectGet("employees:positions:all").RedisNil()
		deps.repo.EXPECT().
			DistinctPositions(ctx, scope).
			Return([]string{"Analyst", "Engineer"}, nil)
		deps.redisMock.ExpectSet("employees:positions:all", []byte(`["Analyst","Engineer"]`), 5*time.Minute).SetVal("OK")

		positions, err := deps.service.PositionOptions(ctx, p)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Analyst", "Engineer"}, positions)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := hrPrincipal()
		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(visibility.AllEmployees(), nil)
		deps.redisMock.ExpectGet("employees:positions:all").SetVal(`["Engineer"]`)

		positions, err := deps.service.PositionOptions(ctx, p)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Engineer"}, positions)
	})

	t.Run("restricted scope uses a department key", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleEmployee}
		deptID := uuid.New()
		scope := visibility.DepartmentOnly(deptID)

		deps.resolver.EXPECT().EmployeeScope(ctx, p).Return(scope, nil)
		deps.redisMock.ExpectGet("employees:positions:" + deptID.String()).SetVal(`["Engineer"]`)

		positions, err := deps.service.PositionOptions(ctx, p)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Engineer"}, positions)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("plain employee cannot read a record by id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleEmployee}

		// no repo expectation: the gate fires before the store is touched
		_, err := deps.service.GetByID(ctx, p, uuid.New().String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("elevated role reads the row with role decoration", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleManager}
		accountID := uuid.New()
		empl := &employee.Employee{
			ID:        uuid.New(),
			FirstName: "Ada",
			LastName:  "Byron",
			Email:     "ada@example.com",
			Position:  "Engineer",
			Salary:    4200,
			HireDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			AccountID: &accountID,
		}

		deps.repo.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)
		deps.accounts.EXPECT().
			RolesByAccountIDs(ctx, []uuid.UUID{accountID}).
			Return(map[uuid.UUID]authz.Role{accountID: authz.RoleEmployee}, nil)

		resp, err := deps.service.GetByID(ctx, p, empl.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, "EMPLOYEE", *resp.Role)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	validUpdate := func() employee.UpdateEmployeeRequest {
		return employee.UpdateEmployeeRequest{
			FirstName: "Ada",
			LastName:  "Byron",
			Email:     "ada.new@example.com",
			Position:  "Engineer",
			Salary:    5000,
			HireDate:  "2026-03-01",
		}
	}

	t.Run("email collision is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{ID: uuid.New(), Email: "ada@example.com"}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			EmailTakenByOther(ctx, "ada.new@example.com", existing.ID).
			Return(true, nil)

		_, err := deps.service.Update(ctx, hrPrincipal(), existing.ID.String(), validUpdate())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("email change is synced to the account after commit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		accountID := uuid.New()
		existing := &employee.Employee{
			ID:        uuid.New(),
			Email:     "ada@example.com",
			AccountID: &accountID,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			EmailTakenByOther(ctx, "ada.new@example.com", existing.ID).
			Return(false, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.accounts.EXPECT().UpdateEmail(ctx, accountID, "ada.new@example.com").Return(nil)
		deps.redisMock.ExpectDel("employees:positions:all").SetVal(1)
		deps.redisMock.ExpectDel("employees:positions:all").SetVal(1)
		deps.accounts.EXPECT().
			RolesByAccountIDs(ctx, []uuid.UUID{accountID}).
			Return(map[uuid.UUID]authz.Role{accountID: authz.RoleEmployee}, nil)

		resp, err := deps.service.Update(ctx, hrPrincipal(), existing.ID.String(), validUpdate())

		assert.NoError(t, err)
		assert.Equal(t, "ada.new@example.com", resp.Email)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade runs inside one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteCascade(ctx, id).Return(nil)

		err := deps.service.Delete(ctx, hrPrincipal(), id)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
