package redis

import (
	"context"
	"time"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServiceInterface interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	GetTTL(ctx context.Context, key string) (time.Duration, error)

	CacheProductMap(ctx context.Context, fingerprint string, data interface{}, ttl time.Duration) error
	GetProductMap(ctx context.Context, fingerprint string, dest interface{}) error
	InvalidateProductMaps(ctx context.Context) error

	Keys(ctx context.Context, pattern string) ([]string, error)
	Health(ctx context.Context) error
	Close() error
}
