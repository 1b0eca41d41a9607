package redis

import (
	"context"

	"campusbuild/config"
	"campusbuild/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Rdb *redis.Client

// Connect builds the shared client, or returns nil when redis is not
// configured. Callers treat a nil client as "feature disabled".
func Connect(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		logger.Log.Info("redis not configured, sign-in rate limiting disabled")
		return nil
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		logger.Log.Warn("redis unreachable, sign-in rate limiting disabled", zap.Error(err))
		Rdb = nil
		return nil
	}
	return Rdb
}
