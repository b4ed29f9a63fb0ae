package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"ziplay/models"
	"ziplay/utils"

	"github.com/go-redis/redis/v8"
)

// RedisAttemptStore keeps checkout attempts in Redis, keyed by gateway order
// id, with a TTL bounding how long an unconfirmed attempt may linger.
type RedisAttemptStore struct {
	client *redis.Client
}

// NewRedisAttemptStore creates an attempt store on the given client.
func NewRedisAttemptStore(client *redis.Client) *RedisAttemptStore {
	return &RedisAttemptStore{client: client}
}

// Save writes the attempt, refreshing its TTL.
func (s *RedisAttemptStore) Save(ctx context.Context, attempt *models.CheckoutAttempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout attempt: %w", err)
	}
	key := utils.CheckoutAttemptPrefix + attempt.OrderID
	if err := s.client.Set(ctx, key, data, utils.CheckoutAttemptTTL).Err(); err != nil {
		return fmt.Errorf("failed to save checkout attempt: %w", err)
	}
	return nil
}

// Get retrieves the attempt for an order id.
func (s *RedisAttemptStore) Get(ctx context.Context, orderID string) (*models.CheckoutAttempt, error) {
	data, err := s.client.Get(ctx, utils.CheckoutAttemptPrefix+orderID).Result()
	if err == redis.Nil {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout attempt: %w", err)
	}
	var attempt models.CheckoutAttempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout attempt: %w", err)
	}
	return &attempt, nil
}
