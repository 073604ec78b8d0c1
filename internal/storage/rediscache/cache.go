package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/logistics-platform/waybill/internal/domain/model"
)

// waybillKeyPrefix mirrors the cache namespace used for waybill lookups.
const waybillKeyPrefix = "waybill:NO"

// Cache stores serialized waybills in Redis with a fixed expiry.
type Cache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// Options configure the Redis connection.
type Options struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

// New connects to Redis and verifies connectivity.
func New(ctx context.Context, opts Options, logger *slog.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Cache{rdb: client, ttl: opts.TTL, logger: logger}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{rdb: client, ttl: ttl, logger: logger}
}

// Key returns the cache key for a waybill number.
func Key(waybillNo string) string {
	return waybillKeyPrefix + waybillNo
}

// Get fetches a cached waybill. A missing key is a miss, not an error.
func (c *Cache) Get(ctx context.Context, waybillNo string) (*model.Waybill, bool, error) {
	b, err := c.rdb.Get(ctx, Key(waybillNo)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var w model.Waybill
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, false, fmt.Errorf("decode cached waybill: %w", err)
	}
	return &w, true, nil
}

// Set stores the waybill under its number with the configured expiry.
func (c *Cache) Set(ctx context.Context, waybill *model.Waybill) error {
	b, err := json.Marshal(waybill)
	if err != nil {
		return fmt.Errorf("encode waybill: %w", err)
	}
	return c.rdb.Set(ctx, Key(waybill.WaybillNo), b, c.ttl).Err()
}

// HealthCheck verifies Redis connectivity.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if c.rdb == nil {
		return errors.New("cache is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
