package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by GetJSON when the key does not exist.
var ErrMiss = errors.New("cache miss")

type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ping(ctx context.Context) error {
	return a.rdb.Ping(ctx).Err()
}

// GetJSON unmarshals the value stored at key into dest.
func (a *RedisService) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := a.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(val, dest)
}

// SetJSON stores value at key as JSON for ttl.
func (a *RedisService) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return a.rdb.Set(ctx, key, data, ttl).Err()
}

// Generation returns the counter stored at key, 0 when unset.
func (a *RedisService) Generation(ctx context.Context, key string) (int64, error) {
	n, err := a.rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Bump increments the counter at key, invalidating every entry derived from it.
func (a *RedisService) Bump(ctx context.Context, key string) error {
	return a.rdb.Incr(ctx, key).Err()
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
