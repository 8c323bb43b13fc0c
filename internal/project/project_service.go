package project

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	projecterrors "github.com/Slawuu/Company-manager/internal/project/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	AssignEmployee(ctx context.Context, projectID string, req AssignEmployeeRequest) (ProjectResponse, error)
	RemoveEmployee(ctx context.Context, projectID, employeeID string) error
	AvailableEmployees(ctx context.Context, projectID string) ([]AvailableEmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	proj := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := applyDates(proj, req.StartDate, req.EndDate); err != nil {
		return ProjectResponse{}, err
	}
	if err := applyManager(proj, req.ManagerAccountID); err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, proj); err != nil {
		s.logger.Warn("create project failed", zap.String("name", req.Name), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.logger.Info("project created", zap.String("project_id", proj.ID.String()))
	return mapToResponse(*proj), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ProjectResponse, len(projs))
	for i, proj := range projs {
		resp[i] = mapToResponse(proj)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	proj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*proj), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	proj.Name = req.Name
	proj.Description = req.Description
	proj.ManagerAccountID = nil
	proj.EndDate = nil
	if err := applyDates(proj, req.StartDate, req.EndDate); err != nil {
		return ProjectResponse{}, err
	}
	if err := applyManager(proj, req.ManagerAccountID); err != nil {
		return ProjectResponse{}, err
	}

	if err := qtx.Update(ctx, proj); err != nil {
		s.logger.Warn("update project failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*proj), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
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

	s.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

func (s *service) AssignEmployee(ctx context.Context, projectID string, req AssignEmployeeRequest) (ProjectResponse, error) {
	projID, err := uuid.Parse(projectID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}
	emplID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, projectID); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	exists, err := qtx.EmployeeExists(ctx, emplID)
	if err != nil {
		return ProjectResponse{}, err
	}
	if !exists {
		return ProjectResponse{}, projecterrors.ErrEmployeeNotFound
	}

	assigned, err := qtx.AssignmentExists(ctx, projID, emplID)
	if err != nil {
		return ProjectResponse{}, err
	}
	if assigned {
		return ProjectResponse{}, projecterrors.ErrEmployeeAlreadyAssigned
	}

	assignment := &ProjectAssignment{
		ID:           uuid.New(),
		ProjectID:    projID,
		EmployeeID:   emplID,
		AssignedDate: time.Now().UTC(),
	}
	if err := qtx.CreateAssignment(ctx, assignment); err != nil {
		// the unique pair index backstops the pre-check under concurrency
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.logger.Info("employee assigned to project",
		zap.String("project_id", projectID),
		zap.String("employee_id", req.EmployeeID),
	)

	proj, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*proj), nil
}

func (s *service) RemoveEmployee(ctx context.Context, projectID, employeeID string) error {
	projID, err := uuid.Parse(projectID)
	if err != nil {
		return projecterrors.ErrInvalidProjectID
	}
	emplID, err := uuid.Parse(employeeID)
	if err != nil {
		return projecterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	removed, err := qtx.DeleteAssignment(ctx, projID, emplID)
	if err != nil {
		return err
	}
	if !removed {
		return projecterrors.ErrAssignmentNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("employee removed from project",
		zap.String("project_id", projectID),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) AvailableEmployees(ctx context.Context, projectID string) ([]AvailableEmployeeResponse, error) {
	projID, err := uuid.Parse(projectID)
	if err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	if _, err := s.repo.FindByID(ctx, projectID); err != nil {
		return nil, mapRepositoryError(err)
	}

	empls, err := s.repo.AvailableEmployees(ctx, projID)
	if err != nil {
		return nil, err
	}

	resp := make([]AvailableEmployeeResponse, len(empls))
	for i, empl := range empls {
		resp[i] = AvailableEmployeeResponse{
			ID:       empl.ID.String(),
			FullName: empl.FullName(),
			Position: empl.Position,
		}
	}
	return resp, nil
}

func applyDates(proj *Project, start string, end *string) error {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return projecterrors.ErrInvalidDate
	}
	proj.StartDate = startDate

	if end != nil && *end != "" {
		endDate, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return projecterrors.ErrInvalidDate
		}
		if endDate.Before(startDate) {
			return projecterrors.ErrEndBeforeStart
		}
		proj.EndDate = &endDate
	}
	return nil
}

func applyManager(proj *Project, managerAccountID *string) error {
	if managerAccountID == nil || *managerAccountID == "" {
		return nil
	}
	managerID, err := uuid.Parse(*managerAccountID)
	if err != nil {
		return projecterrors.ErrInvalidManagerID
	}
	proj.ManagerAccountID = &managerID
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return projecterrors.ErrEmployeeAlreadyAssigned
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return projecterrors.ErrEmployeeAlreadyAssigned
	}

	return err
}

func mapToResponse(proj Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          proj.ID.String(),
		Name:        proj.Name,
		Description: proj.Description,
		StartDate:   proj.StartDate.Format("2006-01-02"),
		Assignments: make([]AssignmentResponse, len(proj.Assignments)),
	}
	if proj.EndDate != nil {
		v := proj.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if proj.ManagerAccountID != nil {
		v := proj.ManagerAccountID.String()
		resp.ManagerAccountID = &v
	}
	for i, a := range proj.Assignments {
		ar := AssignmentResponse{
			EmployeeID:   a.EmployeeID.String(),
			AssignedDate: a.AssignedDate.Format("2006-01-02"),
		}
		if a.Employee != nil {
			ar.FullName = a.Employee.FullName()
			ar.Position = a.Employee.Position
		}
		resp.Assignments[i] = ar
	}
	return resp
}
