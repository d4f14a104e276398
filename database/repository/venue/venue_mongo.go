package venueRepo

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

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of VenueRepository using MongoDB.
func NewMongoVenueRepo() VenueRepository {
	repo := &MongoVenueRepo{coll: database.Collection("venues")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVenueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "address.city", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new venue document.
func (r *MongoVenueRepo) Create(venue *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// Update modifies an existing venue document.
func (r *MongoVenueRepo) Update(venue *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	venue.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": venue.ID}, bson.M{"$set": venue})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", venue.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", venue.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a venue document.
func (r *MongoVenueRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", id)
	}
	return nil
}

// Delete removes a venue document by its ID.
func (r *MongoVenueRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("venue with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a venue by its unique ID.
func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

// GetByOwner retrieves all venues owned by the given account.
func (r *MongoVenueRepo) GetByOwner(ownerID string) ([]models.Venue, error) {
	return r.find(bson.M{"ownerId": ownerID})
}

// GetByStatus retrieves all venues in the given moderation status.
func (r *MongoVenueRepo) GetByStatus(status string) ([]models.Venue, error) {
	return r.find(bson.M{"status": status})
}

// Search lists approved venues matching the given filter.
func (r *MongoVenueRepo) Search(filter models.VenueFilter) ([]models.Venue, error) {
	query := bson.M{"status": models.VenueStatusApproved}
	if filter.City != "" {
		query["address.city"] = filter.City
	}
	if filter.District != "" {
		query["address.district"] = filter.District
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	return r.find(query)
}

// Count returns the total number of venue documents.
func (r *MongoVenueRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return n, nil
}

func (r *MongoVenueRepo) find(query bson.M) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, nil
}
