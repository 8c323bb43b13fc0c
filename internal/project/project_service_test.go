package project_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/project"
	projecterrors "github.com/Slawuu/Company-manager/internal/project/errors"
	projectMock "github.com/Slawuu/Company-manager/internal/project/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service project.Service
	repo    *projectMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := projectMock.NewMockRepository(ctrl)
	svc := project.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("end before start is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		end := "2026-01-01"
		_, err := deps.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Migration",
			StartDate: "2026-06-01",
			EndDate:   &end,
		})

		assert.ErrorIs(t, err, projecterrors.ErrEndBeforeStart)
	})

	t.Run("open-ended project is allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, proj *project.Project) error {
				assert.Nil(t, proj.EndDate)
				assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), proj.StartDate)
				return nil
			})

		resp, err := deps.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Migration",
			StartDate: "2026-06-01",
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.EndDate)
	})
}

func TestProjectService_AssignEmployee(t *testing.T) {
	ctx := context.Background()

	projID := uuid.New()
	emplID := uuid.New()

	t.Run("assignment is created and the project re-read", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		proj := &project.Project{ID: projID, Name: "Migration", StartDate: time.Now()}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(proj, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, emplID).Return(true, nil)
		deps.repo.EXPECT().AssignmentExists(ctx, projID, emplID).Return(false, nil)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *project.ProjectAssignment) error {
				assert.Equal(t, projID, a.ProjectID)
				assert.Equal(t, emplID, a.EmployeeID)
				assert.False(t, a.AssignedDate.IsZero())
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(proj, nil)

		resp, err := deps.service.AssignEmployee(ctx, projID.String(), project.AssignEmployeeRequest{
			EmployeeID: emplID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, projID.String(), resp.ID)
	})

	t.Run("double assignment is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		proj := &project.Project{ID: projID}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(proj, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, emplID).Return(true, nil)
		deps.repo.EXPECT().AssignmentExists(ctx, projID, emplID).Return(true, nil)

		_, err := deps.service.AssignEmployee(ctx, projID.String(), project.AssignEmployeeRequest{
			EmployeeID: emplID.String(),
		})

		assert.ErrorIs(t, err, projecterrors.ErrEmployeeAlreadyAssigned)
	})

	t.Run("the unique index backstops a racing duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		proj := &project.Project{ID: projID}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(proj, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, emplID).Return(true, nil)
		deps.repo.EXPECT().AssignmentExists(ctx, projID, emplID).Return(false, nil)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_project_employee"})

		_, err := deps.service.AssignEmployee(ctx, projID.String(), project.AssignEmployeeRequest{
			EmployeeID: emplID.String(),
		})

		assert.ErrorIs(t, err, projecterrors.ErrEmployeeAlreadyAssigned)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		proj := &project.Project{ID: projID}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(proj, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, emplID).Return(false, nil)

		_, err := deps.service.AssignEmployee(ctx, projID.String(), project.AssignEmployeeRequest{
			EmployeeID: emplID.String(),
		})

		assert.ErrorIs(t, err, projecterrors.ErrEmployeeNotFound)
	})

	t.Run("unknown project maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, projID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AssignEmployee(ctx, projID.String(), project.AssignEmployeeRequest{
			EmployeeID: emplID.String(),
		})

		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	})
}

func TestProjectService_RemoveEmployee(t *testing.T) {
	ctx := context.Background()

	projID := uuid.New()
	emplID := uuid.New()

	t.Run("removing a non-existent assignment is an error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignment(ctx, projID, emplID).Return(false, nil)

		err := deps.service.RemoveEmployee(ctx, projID.String(), emplID.String())

		assert.ErrorIs(t, err, projecterrors.ErrAssignmentNotFound)
	})

	t.Run("removal commits", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignment(ctx, projID, emplID).Return(true, nil)

		err := deps.service.RemoveEmployee(ctx, projID.String(), emplID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestProjectService_AvailableEmployees(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed project id is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.AvailableEmployees(ctx, "nope")

		assert.ErrorIs(t, err, projecterrors.ErrInvalidProjectID)
	})
}
