package session

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisSessionPrefix = "vendorSession:"

// RedisStore keeps session values in a redis hash, one hash per device. Useful
// when several tools on the same host share one vendor sign-in.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a redis-backed store scoped to the given device id.
func NewRedisStore(client *redis.Client, deviceID string) *RedisStore {
	if deviceID == "" {
		deviceID = "default"
	}
	return &RedisStore{client: client, key: redisSessionPrefix + deviceID}
}

func (r *RedisStore) Get(key string) (string, bool, error) {
	v, err := r.client.HGet(context.Background(), r.key, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session value: %w", err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(key, value string) error {
	if err := r.client.HSet(context.Background(), r.key, key, value).Err(); err != nil {
		return fmt.Errorf("failed to save session value: %w", err)
	}
	return nil
}

func (r *RedisStore) SetMany(pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	flat := make([]interface{}, 0, len(pairs)*2)
	for k, v := range pairs {
		flat = append(flat, k, v)
	}
	if err := r.client.HSet(context.Background(), r.key, flat...).Err(); err != nil {
		return fmt.Errorf("failed to save session values: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear() error {
	if err := r.client.Del(context.Background(), r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
