package cartRepo

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

// MongoCartRepo implements CartRepository over the users collection.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new instance of CartRepository using MongoDB.
func NewMongoCartRepo() CartRepository {
	coll := database.MongoClient.Database("ziplay").Collection("users")
	return &MongoCartRepo{coll: coll}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// GetEntries returns the user's stored cart entries.
func (r *MongoCartRepo) GetEntries(ctx context.Context, userID string) ([]models.CartEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var doc struct {
		Cart []models.CartEntry `bson:"cart"`
	}
	opts := options.FindOne().SetProjection(bson.M{"cart": 1})
	if err := r.coll.FindOne(ctx, bson.M{"id": userID}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	if doc.Cart == nil {
		return []models.CartEntry{}, nil
	}
	return doc.Cart, nil
}

// IncrementEntry bumps the count of the entry matching the merge key via a
// positional $inc, so the read-modify-write of the old whole-list update is
// gone.
func (r *MongoCartRepo) IncrementEntry(ctx context.Context, userID, activityID, date, slot string, by int) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"id": userID,
		"cart": bson.M{"$elemMatch": bson.M{
			"activity_id": activityID,
			"date":        date,
			"time":        slot,
		}},
	}
	update := bson.M{"$inc": bson.M{"cart.$.count": by}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to increment cart entry for user %s: %w", userID, err)
	}
	return result.MatchedCount > 0, nil
}

// AppendEntry pushes a new entry onto the cart. The filter excludes documents
// already holding an entry with the same merge key, so two concurrent adds of
// a new key cannot both push; the loser sees MatchedCount 0 and retries the
// increment instead.
func (r *MongoCartRepo) AppendEntry(ctx context.Context, userID string, entry models.CartEntry) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"id": userID,
		"cart": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"activity_id": entry.ActivityID,
			"date":        entry.Date,
			"time":        entry.Time,
		}}},
	}
	update := bson.M{"$push": bson.M{"cart": entry}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to append cart entry for user %s: %w", userID, err)
	}
	return result.MatchedCount > 0, nil
}

// AdjustActivityCount increments every entry of the activity. The floor flag
// restricts the update to entries whose count stays >= 1 afterwards.
func (r *MongoCartRepo) AdjustActivityCount(ctx context.Context, userID, activityID string, delta int, floor bool) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	elemFilter := bson.M{"elem.activity_id": activityID}
	if floor {
		elemFilter["elem.count"] = bson.M{"$gt": 1}
	}

	filter := bson.M{"id": userID}
	update := bson.M{"$inc": bson.M{"cart.$[elem].count": delta}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{elemFilter},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to adjust cart counts for user %s: %w", userID, err)
	}
	return nil
}

// RemoveActivity pulls every entry of the activity from the cart.
func (r *MongoCartRepo) RemoveActivity(ctx context.Context, userID, activityID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"id": userID}
	update := bson.M{"$pull": bson.M{"cart": bson.M{"activity_id": activityID}}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove activity %s from cart of user %s: %w", activityID, userID, err)
	}
	return nil
}

// Clear empties the cart.
func (r *MongoCartRepo) Clear(ctx context.Context, userID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"id": userID}
	update := bson.M{"$set": bson.M{"cart": []models.CartEntry{}}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
