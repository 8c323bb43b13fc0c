package consumer_test

import (
	"context"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/messaging/kafka/consumer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationStore_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	n := consumer.Notification{
		ID:         uuid.New(),
		EmployeeID: uuid.New().String(),
		Kind:       "leave_decided",
		Message:    "Your leave request was APPROVED",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(n.ID, n.EmployeeID, n.Kind, n.Message, n.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := consumer.NewNotificationStore(db)
	assert.NoError(t, store.Insert(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}
