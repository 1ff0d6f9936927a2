package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const productMapPrefix = "product_map:"

var ErrCacheMiss = errors.New("cache miss")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	client *redis.Client
}

func NewRedisService(config RedisConfig) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("✅ Connected to Redis at %s:%s", config.Host, config.Port)
	return &Service{client: client}, nil
}

func (r *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, jsonValue, ttl).Err()
}

func (r *Service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("key %s: %w", key, ErrCacheMiss)
		}
		return fmt.Errorf("failed to get value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (r *Service) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Service) Exists(ctx context.Context, key string) (bool, error) {
	result, err := r.client.Exists(ctx, key).Result()
	return result > 0, err
}

func (r *Service) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

func (r *Service) CacheProductMap(ctx context.Context, fingerprint string, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, productMapPrefix+fingerprint, data, ttl)
}

func (r *Service) GetProductMap(ctx context.Context, fingerprint string, dest interface{}) error {
	return r.Get(ctx, productMapPrefix+fingerprint, dest)
}

func (r *Service) InvalidateProductMaps(ctx context.Context) error {
	keys, err := r.Keys(ctx, productMapPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to list product map keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return r.client.Del(ctx, keys...).Err()
}

func (r *Service) Keys(ctx context.Context, pattern string) ([]string, error) {
	return r.client.Keys(ctx, pattern).Result()
}

func (r *Service) Close() error {
	return r.client.Close()
}

func (r *Service) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
