package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Slawuu/Company-manager/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecided turns decision events into inbox notifications for
// the employee who filed the request. Malformed messages are committed
// and dropped; transient store failures leave the message uncommitted so
// it is retried.
func ConsumeLeaveDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	store NotificationStore,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		n := Notification{
			ID:         uuid.New(),
			EmployeeID: event.EmployeeID,
			Kind:       "leave_decided",
			Message:    fmt.Sprintf("Your leave request was %s", event.Status),
			CreatedAt:  time.Now().UTC(),
		}
		if err := store.Insert(ctx, n); err != nil {
			log.Error("store leave decision notification failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notification stored",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("status", event.Status),
		)
	}
}

// ConsumeEmployeeLifecycle writes a welcome notification when a new
// employee record is created.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	store NotificationStore,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		n := Notification{
			ID:         uuid.New(),
			EmployeeID: event.EmployeeID,
			Kind:       "employee_welcome",
			Message:    "Welcome aboard! Your profile has been set up.",
			CreatedAt:  time.Now().UTC(),
		}
		if err := store.Insert(ctx, n); err != nil {
			log.Error("store welcome notification failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("welcome notification stored", zap.String("employee_id", event.EmployeeID))
	}
}
