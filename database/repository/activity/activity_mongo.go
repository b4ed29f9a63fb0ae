package activityRepo

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

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	coll := database.MongoClient.Database("ziplay").Collection("activities")
	repo := &MongoActivityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "venue_id", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
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

// GetByID retrieves an activity by its unique ID.
func (r *MongoActivityRepo) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var activity models.Activity
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch activity with id %s: %w", id, err)
	}
	return &activity, nil
}

// GetAll retrieves all activities with their venue populated via $lookup.
func (r *MongoActivityRepo) GetAll(ctx context.Context) ([]models.Activity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "venues",
			"localField":   "venue_id",
			"foreignField": "id",
			"as":           "venue",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$venue", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

func (r *MongoActivityRepo) find(ctx context.Context, filter bson.M) ([]models.Activity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// GetByVenue retrieves activities hosted at a venue.
func (r *MongoActivityRepo) GetByVenue(ctx context.Context, venueID string) ([]models.Activity, error) {
	return r.find(ctx, bson.M{"venue_id": venueID})
}

// GetByCategory retrieves activities of a category.
func (r *MongoActivityRepo) GetByCategory(ctx context.Context, category string) ([]models.Activity, error) {
	return r.find(ctx, bson.M{"category": category})
}

// SearchByCity retrieves activities whose city matches the query, case-insensitive.
func (r *MongoActivityRepo) SearchByCity(ctx context.Context, city string) ([]models.Activity, error) {
	return r.find(ctx, bson.M{"city": bson.M{"$regex": city, "$options": "i"}})
}

// Create inserts a new activity record.
func (r *MongoActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	activity.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}
