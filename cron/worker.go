package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"holistia/config"
	"holistia/services/availability"

	"github.com/hibiken/asynq"
)

const TypeGridInvalidate = "availability:invalidate"

type gridInvalidatePayload struct {
	ProfessionalID string `json:"professional_id"`
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqGridInvalidator enqueues grid-invalidation tasks for the background
// worker. Schedule edits stay fast; the cache purge happens off the request
// path.
type AsynqGridInvalidator struct {
	client *asynq.Client
}

// NewAsynqGridInvalidator constructs an invalidator backed by the queue Redis DB.
func NewAsynqGridInvalidator() *AsynqGridInvalidator {
	return &AsynqGridInvalidator{client: asynq.NewClient(queueRedisOpts())}
}

func (i *AsynqGridInvalidator) EnqueueInvalidation(professionalID string) error {
	payload, err := json.Marshal(gridInvalidatePayload{ProfessionalID: professionalID})
	if err != nil {
		return err
	}
	_, err = i.client.Enqueue(asynq.NewTask(TypeGridInvalidate, payload), asynq.MaxRetry(3))
	return err
}

// InitGridInvalidationWorker runs the async worker in background.
func InitGridInvalidationWorker(cache availability.GridCache) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGridInvalidate, handleGridInvalidateTask(cache))

	go func() {
		log.Println("[GridInvalidationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[GridInvalidationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[GridInvalidationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleGridInvalidateTask(cache availability.GridCache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p gridInvalidatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[GridInvalidationWorker] Invalid payload: %v", err)
			return err
		}
		if err := cache.Invalidate(ctx, p.ProfessionalID); err != nil {
			log.Printf("[GridInvalidationWorker] Failed to invalidate grids for %s: %v", p.ProfessionalID, err)
			return err
		}
		return nil
	}
}
