package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	employeeerrors "github.com/Slawuu/Company-manager/internal/employee/errors"
	"github.com/Slawuu/Company-manager/internal/events"
	"github.com/Slawuu/Company-manager/internal/messaging/kafka"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/shared/contextutil"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const positionOptionsKeyPrefix = "employees:positions:"

func positionOptionsKey(scope visibility.EmployeeScope) string {
	if scope.IsAll() {
		return positionOptionsKeyPrefix + "all"
	}
	if deptID, ok := scope.DepartmentID(); ok {
		return positionOptionsKeyPrefix + deptID.String()
	}
	return ""
}

// AccountStore is the slice of the identity module the employee module
// consumes: paired account creation and role decoration.
type AccountStore interface {
	CreateAccount(ctx context.Context, email, password string, role authz.Role) (uuid.UUID, error)
	UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) error
	RolesByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]authz.Role, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, p authz.Principal, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, p authz.Principal, query ListQuery) (EmployeeListResponse, error)
	PositionOptions(ctx context.Context, p authz.Principal) ([]string, error)
	GetByID(ctx context.Context, p authz.Principal, id string) (EmployeeResponse, error)
	Update(ctx context.Context, p authz.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, p authz.Principal, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver visibility.Resolver
	accounts AccountStore
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	resolver visibility.Resolver,
	accounts AccountStore,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, resolver, accounts, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	resolver visibility.Resolver,
	accounts AccountStore,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		accounts: accounts,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, p authz.Principal, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("actor_account_id", p.AccountID.String()),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	if req.Salary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		deptID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		departmentID = &deptID
	}

	role, err := authz.ParseRole(req.Role)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	// Paired creation: the identity account first, then the employee row
	// pointing at it. The two stores are not covered by one transaction;
	// a failed employee write leaves the account behind.
	accountID, err := s.accounts.CreateAccount(ctx, req.Email, req.Password, role)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     hireDate,
		DepartmentID: departmentID,
		AccountID:    &accountID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("orphaned_account_id", accountID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidatePositionOptions(ctx, empl.DepartmentID)
	s.logger.Info("employee created",
		zap.String("employee_id", empl.ID.String()),
		zap.String("account_id", accountID.String()),
	)

	return mapToResponse(*empl, roleStrPtr(role)), nil
}

func (s *service) List(ctx context.Context, p authz.Principal, query ListQuery) (EmployeeListResponse, error) {
	scope, err := s.resolver.EmployeeScope(ctx, p)
	if err != nil {
		return EmployeeListResponse{}, err
	}

	// Unresolvable principals get an empty listing, not an error.
	if scope.IsNone() {
		return EmployeeListResponse{Employees: []EmployeeResponse{}, Positions: []string{}}, nil
	}

	filter := ListFilter{
		Search:   query.Search,
		Position: query.Position,
	}
	if query.DepartmentID != "" {
		deptID, err := uuid.Parse(query.DepartmentID)
		if err != nil {
			return EmployeeListResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		filter.DepartmentID = &deptID
	}

	empls, err := s.repo.FindAllScoped(ctx, scope, filter)
	if err != nil {
		return EmployeeListResponse{}, err
	}

	positions, err := s.positionOptions(ctx, scope)
	if err != nil {
		return EmployeeListResponse{}, err
	}

	roles, err := s.rolesForEmployees(ctx, empls)
	if err != nil {
		return EmployeeListResponse{}, err
	}

	resp := EmployeeListResponse{
		Employees: make([]EmployeeResponse, len(empls)),
		Positions: positions,
	}
	for i, empl := range empls {
		resp.Employees[i] = mapToResponse(empl, roleFor(empl, roles))
	}
	return resp, nil
}

func (s *service) PositionOptions(ctx context.Context, p authz.Principal) ([]string, error) {
	scope, err := s.resolver.EmployeeScope(ctx, p)
	if err != nil {
		return nil, err
	}
	if scope.IsNone() {
		return []string{}, nil
	}
	return s.positionOptions(ctx, scope)
}

// positionOptions serves the scoped filter vocabulary from redis when it
// can, falling back to the database. singleflight keeps a cold key from
// fanning out into parallel identical queries.
func (s *service) positionOptions(ctx context.Context, scope visibility.EmployeeScope) ([]string, error) {
	key := positionOptionsKey(scope)
	if s.rdb == nil || key == "" {
		return s.repo.DistinctPositions(ctx, scope)
	}

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var positions []string
		if err := json.Unmarshal([]byte(cached), &positions); err == nil {
			return positions, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		positions, err := s.repo.DistinctPositions(ctx, scope)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(positions); err == nil {
			if err := s.rdb.Set(ctx, key, payload, 5*time.Minute).Err(); err != nil {
				s.logger.Warn("cache position options failed", zap.String("key", key), zap.Error(err))
			}
		}
		return positions, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (s *service) invalidatePositionOptions(ctx context.Context, departmentID *uuid.UUID) {
	if s.rdb == nil {
		return
	}
	keys := []string{positionOptionsKeyPrefix + "all"}
	if departmentID != nil {
		keys = append(keys, positionOptionsKeyPrefix+departmentID.String())
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("invalidate position options failed", zap.Error(err))
	}
}

func (s *service) GetByID(ctx context.Context, p authz.Principal, id string) (EmployeeResponse, error) {
	// Detail reads expose salary; plain employees only get the scoped
	// listing, never a record fetched by id.
	if !p.HasAnyRole(authz.EmployeeVisibilityRoles...) {
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	roles, err := s.rolesForEmployees(ctx, []Employee{*empl})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl, roleFor(*empl, roles)), nil
}

func (s *service) Update(ctx context.Context, p authz.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	if req.Salary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		// a concurrently deleted row surfaces as NotFound, anything else
		// is re-raised as-is
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	taken, err := qtx.EmailTakenByOther(ctx, req.Email, empl.ID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	if req.Phone != nil && *req.Phone != "" {
		taken, err := qtx.PhoneTakenByOther(ctx, *req.Phone, empl.ID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrPhoneTaken
		}
	}

	oldDepartmentID := empl.DepartmentID
	emailChanged := empl.Email != req.Email

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Position = req.Position
	empl.Salary = req.Salary
	empl.HireDate = hireDate
	empl.DepartmentID = nil
	empl.Department = nil
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		deptID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		empl.DepartmentID = &deptID
	}

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	// Keep the login email aligned with the employee email. This write is
	// outside the transaction above; the pairing is by convention only.
	if emailChanged && empl.AccountID != nil {
		if err := s.accounts.UpdateEmail(ctx, *empl.AccountID, req.Email); err != nil {
			s.logger.Error("sync account email failed",
				zap.String("employee_id", id),
				zap.String("account_id", empl.AccountID.String()),
				zap.Error(err),
			)
		}
	}

	s.invalidatePositionOptions(ctx, oldDepartmentID)
	s.invalidatePositionOptions(ctx, empl.DepartmentID)
	s.logger.Info("employee updated", zap.String("employee_id", id))

	roles, err := s.rolesForEmployees(ctx, []Employee{*empl})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl, roleFor(*empl, roles)), nil
}

func (s *service) Delete(ctx context.Context, p authz.Principal, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteCascade(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("employee deleted",
		zap.String("employee_id", id),
		zap.String("actor_account_id", p.AccountID.String()),
	)
	return nil
}

func (s *service) rolesForEmployees(ctx context.Context, empls []Employee) (map[uuid.UUID]authz.Role, error) {
	accountIDs := make([]uuid.UUID, 0, len(empls))
	for _, empl := range empls {
		if empl.AccountID != nil {
			accountIDs = append(accountIDs, *empl.AccountID)
		}
	}
	if len(accountIDs) == 0 {
		return map[uuid.UUID]authz.Role{}, nil
	}
	return s.accounts.RolesByAccountIDs(ctx, accountIDs)
}

func roleFor(empl Employee, roles map[uuid.UUID]authz.Role) *string {
	if empl.AccountID == nil {
		return nil
	}
	role, ok := roles[*empl.AccountID]
	if !ok {
		return nil
	}
	return roleStrPtr(role)
}

func roleStrPtr(role authz.Role) *string {
	v := string(role)
	return &v
}

func mapToResponse(empl Employee, role *string) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email,
		Phone:     empl.Phone,
		Position:  empl.Position,
		Salary:    empl.Salary,
		HireDate:  empl.HireDate.Format("2006-01-02"),
		Role:      role,
	}
	if empl.DepartmentID != nil {
		v := empl.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if empl.Department != nil {
		v := empl.Department.Name
		resp.DepartmentName = &v
	}
	if empl.AccountID != nil {
		v := empl.AccountID.String()
		resp.AccountID = &v
	}
	return resp
}
