package models

import "time"

// Conversation is a direct message thread between two users.
// Participants always holds exactly two user IDs.
type Conversation struct {
	ID            string    `bson:"id" json:"id"`
	Participants  []string  `bson:"participants" json:"participants"`
	LastMessage   string    `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt time.Time `bson:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Message is a single chat message inside a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	Content        string    `bson:"content" json:"content"`
	Read           bool      `bson:"read" json:"read"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// SendMessageRequest is the payload for sending a chat message.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required,max=2000"`
}
