package consumer

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Notification is the per-employee inbox entry written by the consumers.
// It is append-only; read models are out of scope for the consumer binary.
type Notification struct {
	ID         uuid.UUID
	EmployeeID string
	Kind       string
	Message    string
	CreatedAt  time.Time
}

type NotificationStore interface {
	Insert(ctx context.Context, n Notification) error
}

type sqlNotificationStore struct {
	db *sql.DB
}

func NewNotificationStore(db *sql.DB) NotificationStore {
	return &sqlNotificationStore{db: db}
}

func (s *sqlNotificationStore) Insert(ctx context.Context, n Notification) error {
	query := `
        INSERT INTO notifications (id, employee_id, kind, message, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := s.db.ExecContext(ctx, query, n.ID, n.EmployeeID, n.Kind, n.Message, n.CreatedAt)
	return err
}
