package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/hibiken/asynq"
)

// Task type names routed by the background worker.
const (
	TypeLoyaltyAward    = "loyalty:award"
	TypeBookingReminder = "booking:reminder"
)

// NewLoyaltyAwardTask builds the task that credits loyalty points for a
// completed booking.
func NewLoyaltyAwardTask(payload models.LoyaltyAwardPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loyalty award payload: %w", err)
	}
	return asynq.NewTask(TypeLoyaltyAward, data, asynq.MaxRetry(5)), nil
}

// NewBookingReminderTask builds the task that pushes a reminder notification
// before a booking starts. remindAt schedules its delivery.
func NewBookingReminderTask(payload models.BookingReminderPayload, remindAt time.Time) (*asynq.Task, []asynq.Option, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal booking reminder payload: %w", err)
	}
	opts := []asynq.Option{asynq.ProcessAt(remindAt), asynq.MaxRetry(3)}
	return asynq.NewTask(TypeBookingReminder, data), opts, nil
}
