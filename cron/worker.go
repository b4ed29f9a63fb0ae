package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"ziplay/config"
	bookingRepo "ziplay/database/repository/booking"
	cartRepo "ziplay/database/repository/cart"
	"ziplay/models"
	"ziplay/services/checkout"

	"github.com/hibiken/asynq"
)

const TypeBookingReconcile = "booking:reconcile"

type reconcilePayload struct {
	OrderID string `json:"orderId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqEnqueuer schedules reconciliation tasks for checkout attempts whose
// payment is captured but whose booking write or cart clear did not land.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer creates the task client.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueueReconcile queues a retry for the given order.
func (e *AsynqEnqueuer) EnqueueReconcile(ctx context.Context, orderID string) error {
	payload, err := json.Marshal(reconcilePayload{OrderID: orderID})
	if err != nil {
		return fmt.Errorf("failed to marshal reconcile payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReconcile, payload)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(10)); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}

// InitReconcileWorker runs the async worker in background.
func InitReconcileWorker(attempts checkout.AttemptStore, bookings bookingRepo.BookingRepository, carts cartRepo.CartRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReconcile, handleReconcileTask(attempts, bookings, carts))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempt, maxAttempts, err)

				if attempt == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReconcileTask finishes a stranded checkout: re-insert the booking
// (a duplicate payment id counts as already done), clear the cart, and mark
// the attempt done. Returning an error hands the task back to asynq's
// retry/backoff.
func handleReconcileTask(attempts checkout.AttemptStore, bookings bookingRepo.BookingRepository, carts cartRepo.CartRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload reconcilePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid reconcile payload: %w", err)
		}

		attempt, err := attempts.Get(ctx, payload.OrderID)
		if err != nil {
			if errors.Is(err, checkout.ErrAttemptNotFound) {
				// Attempt TTL elapsed before reconciliation succeeded; the
				// booking cannot be rebuilt. Surface for support follow-up.
				log.Printf("[ReconcileWorker] attempt for order %s expired, manual follow-up required", payload.OrderID)
				return nil
			}
			return err
		}
		if attempt.Status == models.StatusDone {
			return nil
		}

		booking := checkout.BuildBooking(attempt)
		if err := bookings.Create(ctx, booking); err != nil && !errors.Is(err, bookingRepo.ErrDuplicate) {
			return fmt.Errorf("booking write still failing for order %s: %w", payload.OrderID, err)
		}

		if err := carts.Clear(ctx, attempt.UserID); err != nil {
			return fmt.Errorf("cart clear failing for order %s: %w", payload.OrderID, err)
		}

		attempt.Status = models.StatusDone
		if err := attempts.Save(ctx, attempt); err != nil {
			return err
		}

		log.Printf("[ReconcileWorker] reconciled booking for order %s", payload.OrderID)
		return nil
	}
}
