package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const PriorityQueue = "priority_queue"

type ProducerContract interface {
	Enqueue(ctx context.Context, jobType string, payload json.RawMessage, priority int) error
}

type RedisProducer struct {
	rdb *redis.Client
}

func NewRedisProducer(rdb *redis.Client) *RedisProducer {
	return &RedisProducer{rdb: rdb}
}

func (p *RedisProducer) Enqueue(ctx context.Context, jobType string, payload json.RawMessage, priority int) error {
	now := time.Now()
	job := Job{
		ID:        uuid.NewString(),
		Type:      jobType,
		Payload:   payload,
		Priority:  priority,
		Retry:     0,
		MaxRetry:  3,
		CreatedAt: now.Unix(),
		ExpireAt:  now.Add(15 * time.Minute).Unix(),
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}

	// scores are unix seconds, the pool pops everything scored <= now;
	// a priority bias lets urgent jobs jump the line
	score := float64(now.Unix()) - float64(priority)
	if err := p.rdb.ZAdd(ctx, PriorityQueue, redis.Z{Score: score, Member: raw}).Err(); err != nil {
		return err
	}

	log.Debug().Str("job_id", job.ID).Str("type", jobType).Msg("job enqueued")
	return nil
}
