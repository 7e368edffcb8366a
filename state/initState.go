package state

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/viettl/skipli/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type AppState struct {
	Ctx       context.Context
	Cancel    context.CancelFunc
	Mongo     *mongo.Client
	Redis     *redis.Client
	JwtSecret []byte
}

func InitAppState(ctx context.Context, cancel context.CancelFunc) (*AppState, error) {
	rAddr := config.Conf.DATABASE.Redis.Addr
	rPass := config.Conf.DATABASE.Redis.Password

	mongoClient, err := InitMongo(context.Background())
	if err != nil {
		return nil, err
	}

	rdb, err := InitRedis(rAddr, rPass, 0)
	if err != nil {
		return nil, err
	}

	secret, err := InitSecret()
	if err != nil {
		return nil, err
	}

	return &AppState{
		Ctx:       ctx,
		Cancel:    cancel,
		Mongo:     mongoClient,
		Redis:     rdb,
		JwtSecret: secret,
	}, nil
}

// Collection returns a handle in the configured application database.
func (a *AppState) Collection(name string) *mongo.Collection {
	db := config.Conf.DATABASE.Mongo.Database
	if db == "" {
		db = "skipli"
	}
	return a.Mongo.Database(db).Collection(name)
}

func (a *AppState) Close() {
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		log.Info().Msg("Closing MongoDB client...")
		defer cancel()
		if err := a.Mongo.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect MongoDB client")
		}
	}

	if a.Redis != nil {
		log.Info().Msg("Closing Redis client...")
		if err := a.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}
}
