package chatRepo

import "github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

// ChatRepository defines the persistence contract for conversations and messages.
type ChatRepository interface {
	GetOrCreateConversation(userA, userB string) (*models.Conversation, error)
	GetConversationByID(id string) (*models.Conversation, error)
	GetConversationsForUser(userID string) ([]models.Conversation, error)
	TouchConversation(id, lastMessage string) error
	InsertMessage(msg *models.Message) error
	GetMessages(conversationID string, page, perPage int64) ([]models.Message, error)
	MarkRead(conversationID, readerID string) error
}
