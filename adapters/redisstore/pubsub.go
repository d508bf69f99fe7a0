package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	rdb *redis.Client
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return r.rdb.Publish(ctx, channel, message).Err()
}
