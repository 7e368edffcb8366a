package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/queue"
	"github.com/viettl/skipli/state"
)

const (
	dlqCollection   = "failed_jobs"
	dlqMaxRetry     = 3
	dlqRetryEvery   = time.Minute
	dlqRetryBatch   = 20
	dlqRetryBackoff = 2 * time.Minute
)

// StartDLQWorker drains the Redis dead-letter list into Mongo where failed
// jobs survive restarts and can be inspected.
func (wp *WorkerPool) StartDLQWorker(ctx context.Context, appState *state.AppState) {
	wp.wg.Add(1)
	go func() {
		defer wp.wg.Done()

		log.Info().Msg("DLQ worker started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("DLQ worker stopping")
				return
			default:
				result, err := wp.Redis.BLPop(ctx, 10*time.Second, dlqKey).Result()
				if err == redis.Nil {
					continue
				} else if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("DLQWorker pop failed")
					continue
				}

				payload := result[1]
				var job queue.Job
				if err := json.Unmarshal([]byte(payload), &job); err != nil {
					log.Warn().Err(err).Msg("DLQWorker invalid job payload")
					continue
				}

				now := time.Now().UTC()
				doc := entity.DLQJob{
					ID:         uuid.New().String(),
					JobID:      job.ID,
					Type:       job.Type,
					Payload:    job.Payload,
					Status:     entity.DLQStatusPending,
					RetryCount: 0,
					ErrorMsg:   job.ErrorMsg,
					CreatedAt:  now,
					UpdatedAt:  now,
				}

				if _, err := appState.Collection(dlqCollection).InsertOne(ctx, doc); err != nil {
					log.Error().Err(err).Msg("Failed to persist DLQ job to MongoDB")
					// keep the job in Redis rather than lose it
					wp.Redis.RPush(ctx, dlqKey, payload)
				} else {
					log.Info().Str("job_id", job.ID).Msg("DLQ job persisted to MongoDB")
				}
			}
		}
	}()
}

// StartDLQRetryConsumer periodically re-runs archived jobs until they
// complete or exhaust their retries.
func (wp *WorkerPool) StartDLQRetryConsumer(ctx context.Context, appState *state.AppState) {
	wp.wg.Add(1)
	go func() {
		defer wp.wg.Done()

		log.Info().Msg("DLQ retry consumer started")
		ticker := time.NewTicker(dlqRetryEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("DLQ retry consumer stopping")
				return
			case <-ticker.C:
				wp.processDLQJobs(ctx, appState)
			}
		}
	}()
}

func (wp *WorkerPool) processDLQJobs(ctx context.Context, appState *state.AppState) {
	collection := appState.Collection(dlqCollection)

	now := time.Now().UTC()
	filter := bson.M{
		"status":     bson.M{"$in": []string{entity.DLQStatusPending, entity.DLQStatusFailed}},
		"retryCount": bson.M{"$lt": dlqMaxRetry},
		"$or": []bson.M{
			{"nextRetryAt": bson.M{"$exists": false}},
			{"nextRetryAt": bson.M{"$lte": now}},
		},
	}

	cursor, err := collection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": 1}).SetLimit(dlqRetryBatch))
	if err != nil {
		log.Error().Err(err).Msg("Failed to query DLQ jobs")
		return
	}
	defer cursor.Close(ctx)

	var jobs []entity.DLQJob
	if err := cursor.All(ctx, &jobs); err != nil {
		log.Error().Err(err).Msg("Failed to decode DLQ jobs")
		return
	}
	if len(jobs) == 0 {
		return
	}

	log.Info().Int("count", len(jobs)).Msg("Processing DLQ jobs")
	for _, dlqJob := range jobs {
		wp.retryDLQJob(ctx, appState, dlqJob)
	}
}

func (wp *WorkerPool) retryDLQJob(ctx context.Context, appState *state.AppState, dlqJob entity.DLQJob) {
	collection := appState.Collection(dlqCollection)

	job := queue.Job{
		ID:      dlqJob.JobID,
		Type:    dlqJob.Type,
		Payload: dlqJob.Payload,
	}

	if err := wp.HandleJob(ctx, job); err != nil {
		retryCount := dlqJob.RetryCount + 1
		status := entity.DLQStatusFailed
		if retryCount >= dlqMaxRetry {
			status = entity.DLQStatusPermanentlyFailed
			log.Error().Str("job_id", dlqJob.JobID).Str("type", dlqJob.Type).Msg("DLQ job permanently failed")
		}

		nextRetryAt := time.Now().UTC().Add(dlqRetryBackoff * time.Duration(retryCount))
		if _, uerr := collection.UpdateOne(ctx, bson.M{"_id": dlqJob.ID}, bson.M{"$set": bson.M{
			"status":      status,
			"retryCount":  retryCount,
			"errorMsg":    err.Error(),
			"nextRetryAt": nextRetryAt,
			"updatedAt":   time.Now().UTC(),
		}}); uerr != nil {
			log.Error().Err(uerr).Str("job_id", dlqJob.JobID).Msg("Failed to update DLQ job retry info")
		}
		return
	}

	if _, uerr := collection.UpdateOne(ctx, bson.M{"_id": dlqJob.ID}, bson.M{"$set": bson.M{
		"status":    entity.DLQStatusCompleted,
		"updatedAt": time.Now().UTC(),
	}}); uerr != nil {
		log.Error().Err(uerr).Str("job_id", dlqJob.JobID).Msg("Failed to mark DLQ job as completed")
	}

	log.Info().Str("job_id", dlqJob.JobID).Str("type", dlqJob.Type).Msg("DLQ job successfully retried")
}
