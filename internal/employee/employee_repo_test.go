package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return employee.NewRepository(gdb), mock, db
}

func TestEmployeeRepository_FindAllScoped(t *testing.T) {
	ctx := context.Background()

	t.Run("department filter narrows the scope, never widens it", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		salesID := uuid.New()
		itID := uuid.New()

		// A department-scoped viewer asking for a different department must
		// hit both predicates and get nothing back.
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE department_id = \$1 AND department_id = \$2 ORDER BY last_name ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		empls, err := repo.FindAllScoped(ctx,
			visibility.DepartmentOnly(salesID),
			employee.ListFilter{DepartmentID: &itID},
		)

		assert.NoError(t, err)
		assert.Empty(t, empls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none scope matches no rows", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE 1 = 0 ORDER BY last_name ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		empls, err := repo.FindAllScoped(ctx, visibility.NoEmployees(), employee.ListFilter{})

		assert.NoError(t, err)
		assert.Empty(t, empls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
