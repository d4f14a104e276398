package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/config"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/notification"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/tasks"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewQueueClient builds the asynq client used to enqueue background work.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitWorker runs the background task worker. It handles loyalty awards for
// completed bookings and scheduled booking reminders.
func InitWorker(userSvc user.UserService, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLoyaltyAward, handleLoyaltyAward(userSvc))
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder(notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting background worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("worker could not start, giving up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleLoyaltyAward(userSvc user.UserService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.LoyaltyAwardPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("loyalty award: invalid payload", zap.Error(err))
			return err
		}

		balance, err := userSvc.AwardLoyaltyPoints(p.UserID, p.Amount)
		if err != nil {
			utils.GetLogger().Error("loyalty award failed",
				zap.String("userID", p.UserID), zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}

		utils.GetLogger().Info("loyalty points awarded",
			zap.String("userID", p.UserID),
			zap.String("bookingID", p.BookingID),
			zap.Int64("balance", balance))
		return nil
	}
}

func handleBookingReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("booking reminder: invalid payload", zap.Error(err))
			return err
		}

		if err := notifSvc.NotifyBookingReminder(ctx, p.UserID, p.CourtName, p.Date, p.Start); err != nil {
			utils.GetLogger().Error("booking reminder failed",
				zap.String("userID", p.UserID), zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
