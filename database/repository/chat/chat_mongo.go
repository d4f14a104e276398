package chatRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/database"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{
		conversations: database.Collection("conversations"),
		messages:      database.Collection("messages"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.conversations.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "lastMessageAt", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "created_at", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// GetOrCreateConversation finds the thread between two users, creating it on
// first contact.
func (r *MongoChatRepo) GetOrCreateConversation(userA, userB string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"participants": bson.M{"$all": []string{userA, userB}, "$size": 2}}

	var conv models.Conversation
	err := r.conversations.FindOne(ctx, filter).Decode(&conv)
	if err == nil {
		return &conv, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	now := time.Now()
	conv = models.Conversation{
		ID:           uuid.New().String(),
		Participants: []string{userA, userB},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.conversations.InsertOne(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

// GetConversationByID retrieves a conversation by its unique ID.
func (r *MongoChatRepo) GetConversationByID(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation with id %s: %w", id, err)
	}
	return &conv, nil
}

// GetConversationsForUser lists a user's threads, most recently active first.
func (r *MongoChatRepo) GetConversationsForUser(userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	cursor, err := r.conversations.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, nil
}

// TouchConversation updates the last-message preview and activity timestamp.
func (r *MongoChatRepo) TouchConversation(id, lastMessage string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"lastMessage":   lastMessage,
		"lastMessageAt": now,
		"updated_at":    now,
	}}
	result, err := r.conversations.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to touch conversation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation with id %s not found", id)
	}
	return nil
}

// InsertMessage persists a chat message.
func (r *MongoChatRepo) InsertMessage(msg *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	msg.CreatedAt = time.Now()
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetMessages returns a page of messages in chronological order.
func (r *MongoChatRepo) GetMessages(conversationID string, page, perPage int64) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := r.messages.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// MarkRead flags all messages sent to the reader in a conversation as read.
func (r *MongoChatRepo) MarkRead(conversationID, readerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"conversationId": conversationID,
		"senderId":       bson.M{"$ne": readerID},
		"read":           false,
	}
	if _, err := r.messages.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
