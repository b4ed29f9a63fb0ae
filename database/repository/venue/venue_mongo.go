package venueRepo

import (
	"context"
	"fmt"
	"time"

	"ziplay/database"
	"ziplay/models"

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
	coll := database.MongoClient.Database("ziplay").Collection("venues")
	repo := &MongoVenueRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoVenueRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// GetByID retrieves a venue by its unique ID.
func (r *MongoVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

func (r *MongoVenueRepo) find(ctx context.Context, filter bson.M) ([]models.Venue, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

// GetAll retrieves all venues.
func (r *MongoVenueRepo) GetAll(ctx context.Context) ([]models.Venue, error) {
	return r.find(ctx, bson.M{})
}

// SearchByAddress retrieves venues whose address matches the query, case-insensitive.
func (r *MongoVenueRepo) SearchByAddress(ctx context.Context, location string) ([]models.Venue, error) {
	return r.find(ctx, bson.M{"address": bson.M{"$regex": location, "$options": "i"}})
}

// Create inserts a new venue record.
func (r *MongoVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}
