package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

type Cache interface {
	Get(ctx context.Context, key string) (*Location, bool, error)
	Set(ctx context.Context, key string, location *Location) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string) (*Location, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, eris.Wrap(err, "geocode: cache get")
	}

	var location Location
	if err := json.Unmarshal(raw, &location); err != nil {
		return nil, false, eris.Wrap(err, "geocode: cache decode")
	}

	return &location, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, location *Location) error {
	raw, err := json.Marshal(location)
	if err != nil {
		return eris.Wrap(err, "geocode: cache encode")
	}

	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return eris.Wrap(err, "geocode: cache set")
	}

	return nil
}
