package courtRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/database"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCourtRepo implements CourtRepository using MongoDB.
type MongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo creates a new instance of CourtRepository using MongoDB.
func NewMongoCourtRepo() CourtRepository {
	repo := &MongoCourtRepo{coll: database.Collection("courts")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCourtRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "venueId", Value: 1}}},
		{Keys: bson.D{{Key: "sportType", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new court document.
func (r *MongoCourtRepo) Create(court *models.Court) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	court.CreatedAt = now
	court.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, court); err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}

// Update modifies an existing court document.
func (r *MongoCourtRepo) Update(court *models.Court) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	court.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": court.ID}, bson.M{"$set": court})
	if err != nil {
		return fmt.Errorf("failed to update court with id %s: %w", court.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("court with id %s not found", court.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a court document.
func (r *MongoCourtRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update court with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("court with id %s not found", id)
	}
	return nil
}

// Delete removes a court document by its ID.
func (r *MongoCourtRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete court with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("court with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a court by its unique ID.
func (r *MongoCourtRepo) GetByID(id string) (*models.Court, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var court models.Court
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch court with id %s: %w", id, err)
	}
	return &court, nil
}

// GetByVenue retrieves all courts that belong to the given venue.
func (r *MongoCourtRepo) GetByVenue(venueID string) ([]models.Court, error) {
	return r.find(bson.M{"venueId": venueID})
}

// GetBySport retrieves all active courts for a sport type.
func (r *MongoCourtRepo) GetBySport(sportType string) ([]models.Court, error) {
	return r.find(bson.M{"sportType": sportType, "active": true})
}

func (r *MongoCourtRepo) find(query bson.M) ([]models.Court, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	for cursor.Next(ctx) {
		var c models.Court
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode court: %w", err)
		}
		courts = append(courts, c)
	}
	return courts, nil
}
