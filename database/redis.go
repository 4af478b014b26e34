package database

import (
	"context"
	"time"

	"leave_manager/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client used for refresh tokens and notification
// pub/sub fanout.
func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
}

const refreshTokenTTL = 7 * 24 * time.Hour

func StoreRefreshToken(ctx context.Context, rdb *redis.Client, username, token string) error {
	return rdb.Set(ctx, "refresh:"+username, token, refreshTokenTTL).Err()
}

func CheckRefreshToken(ctx context.Context, rdb *redis.Client, username, token string) (bool, error) {
	stored, err := rdb.Get(ctx, "refresh:"+username).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func DeleteRefreshToken(ctx context.Context, rdb *redis.Client, username string) error {
	return rdb.Del(ctx, "refresh:"+username).Err()
}
