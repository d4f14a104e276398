package notification

import (
	"context"
	"fmt"

	userRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// NotificationService pushes FCM notifications to user devices.
type NotificationService interface {
	// NotifyBookingConfirmed tells the user their booking is locked in.
	NotifyBookingConfirmed(ctx context.Context, userID, courtName, date string) error
	// NotifyBookingReminder fires shortly before a booking starts.
	NotifyBookingReminder(ctx context.Context, userID, courtName, date, start string) error
	// NotifyNewMessage tells a user they have an unread chat message.
	NotifyNewMessage(ctx context.Context, userID, senderName, preview string) error
}

// DefaultNotificationService sends through the shared FCM client. A nil
// client (Firebase not configured) downgrades every send to a log line.
type DefaultNotificationService struct {
	Client *messaging.Client
	Users  userRepo.UserRepository
}

func (s *DefaultNotificationService) send(ctx context.Context, userID, title, body string) error {
	usr, err := s.Users.GetByIDWithProjection(userID, bson.M{"id": 1, "fcmToken": 1})
	if err != nil {
		return fmt.Errorf("failed to fetch user for notification: %w", err)
	}
	if usr == nil || usr.FCMToken == "" {
		utils.GetLogger().Debug("notification skipped: no FCM token",
			zap.String("userID", userID), zap.String("title", title))
		return nil
	}

	if s.Client == nil {
		utils.GetLogger().Info("notification (FCM disabled)",
			zap.String("userID", userID), zap.String("title", title), zap.String("body", body))
		return nil
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, userID, courtName, date string) error {
	body := fmt.Sprintf("Your booking at %s on %s is confirmed. See you on the court!", courtName, date)
	return s.send(ctx, userID, "Booking confirmed", body)
}

func (s *DefaultNotificationService) NotifyBookingReminder(ctx context.Context, userID, courtName, date, start string) error {
	body := fmt.Sprintf("Your session at %s starts at %s on %s.", courtName, start, date)
	return s.send(ctx, userID, "Upcoming booking", body)
}

func (s *DefaultNotificationService) NotifyNewMessage(ctx context.Context, userID, senderName, preview string) error {
	if len(preview) > 80 {
		preview = preview[:77] + "..."
	}
	return s.send(ctx, userID, "New message from "+senderName, preview)
}
