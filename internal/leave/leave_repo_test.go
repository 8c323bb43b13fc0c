package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLeaveRepository_WithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("update runs on the caller's transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
		require.NoError(t, err)

		repo := leave.NewRepository(gdb)

		// Ordered expectations: the UPDATE must land between Begin and
		// Commit on the transaction, not on a pooled connection.
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		lr := &leave.LeaveRequest{
			ID:          uuid.New(),
			EmployeeID:  uuid.New(),
			StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			LeaveType:   "vacation",
			Status:      leave.StatusApproved,
			RequestDate: time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
		}
		err = repo.WithTx(tx).Update(ctx, lr)
		assert.NoError(t, err)

		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
