package chat

import (
	"context"
	"fmt"
	"time"

	chatRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/chat"
	userRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/notification"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ChatService defines business logic for one-to-one messaging between users
// and venue owners.
type ChatService interface {
	// SendMessage delivers a message to the recipient, creating the
	// conversation on first contact, and pushes an FCM notification.
	SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.Message, error)
	// GetConversations lists the caller's conversations, most recent first.
	GetConversations(userID string) ([]models.Conversation, error)
	// GetMessages pages through a conversation the caller belongs to.
	GetMessages(userID, conversationID string, page, perPage int64) ([]models.Message, error)
	// MarkConversationRead marks the other party's messages as read.
	MarkConversationRead(userID, conversationID string) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo     chatRepo.ChatRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}

// requireParticipant loads the conversation and checks membership.
func (s *DefaultChatService) requireParticipant(userID, conversationID string) (*models.Conversation, error) {
	conv, err := s.Repo.GetConversationByID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation %s not found", conversationID)
	}
	for _, p := range conv.Participants {
		if p == userID {
			return conv, nil
		}
	}
	return nil, fmt.Errorf("you are not part of conversation %s", conversationID)
}

func (s *DefaultChatService) SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.Message, error) {
	if req.RecipientID == senderID {
		return nil, fmt.Errorf("cannot message yourself")
	}
	if req.Content == "" {
		return nil, fmt.Errorf("message content is required")
	}

	recipient, err := s.Users.GetByIDWithProjection(req.RecipientID, bson.M{"id": 1, "status": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipient: %w", err)
	}
	if recipient == nil {
		return nil, fmt.Errorf("recipient %s not found", req.RecipientID)
	}

	conv, err := s.Repo.GetOrCreateConversation(senderID, req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation: %w", err)
	}

	msg := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.InsertMessage(&msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	if err := s.Repo.TouchConversation(conv.ID, req.Content); err != nil {
		utils.GetLogger().Error("SendMessage: failed to touch conversation",
			zap.String("conversationID", conv.ID), zap.Error(err))
	}

	senderName := senderID
	if sender, err := s.Users.GetByIDWithProjection(senderID, bson.M{"id": 1, "fullName": 1}); err == nil && sender != nil {
		senderName = sender.FullName
	}
	if err := s.Notifier.NotifyNewMessage(ctx, req.RecipientID, senderName, req.Content); err != nil {
		utils.GetLogger().Error("SendMessage: failed to push notification",
			zap.String("recipientID", req.RecipientID), zap.Error(err))
	}

	return &msg, nil
}

func (s *DefaultChatService) GetConversations(userID string) ([]models.Conversation, error) {
	return s.Repo.GetConversationsForUser(userID)
}

func (s *DefaultChatService) GetMessages(userID, conversationID string, page, perPage int64) ([]models.Message, error) {
	if _, err := s.requireParticipant(userID, conversationID); err != nil {
		return nil, err
	}
	return s.Repo.GetMessages(conversationID, page, perPage)
}

func (s *DefaultChatService) MarkConversationRead(userID, conversationID string) error {
	if _, err := s.requireParticipant(userID, conversationID); err != nil {
		return err
	}
	return s.Repo.MarkRead(conversationID, userID)
}
