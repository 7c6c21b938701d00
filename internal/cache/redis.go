package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/happyfares/config"
	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	statsTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, statsTTL time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return NewRedisCacheWithClient(client, flightsTTL, statsTTL)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL, statsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL, statsTTL: statsTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	var flights []domain.Flight
	ok, err := c.getJSON(ctx, flightsKey(filter), &flights)
	if err != nil || !ok {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, filter domain.FlightFilter, flights []domain.Flight) error {
	return c.setJSON(ctx, flightsKey(filter), flights, c.flightsTTL)
}

// InvalidateFlights drops every cached search result.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, flightsKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	ok, err := c.getJSON(ctx, statsKey, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisCache) SetStats(ctx context.Context, stats *domain.AdminStats) error {
	return c.setJSON(ctx, statsKey, stats, c.statsTTL)
}

func (c *RedisCache) AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, submitLockKey(key), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSubmitLock(ctx context.Context, key string) error {
	return c.client.Del(ctx, submitLockKey(key)).Err()
}

func (c *RedisCache) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, blacklistKey(jti), "true", ttl).Err()
}

func (c *RedisCache) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := c.client.Exists(ctx, blacklistKey(jti)).Result()
	return n == 1, err
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

const (
	flightsKeyPrefix = "cache:flights:"
	statsKey         = "cache:admin:stats"
)

func flightsKey(filter domain.FlightFilter) string {
	return fmt.Sprintf("%s%s|%s", flightsKeyPrefix, strings.ToLower(strings.TrimSpace(filter.From)), strings.ToLower(strings.TrimSpace(filter.To)))
}

func submitLockKey(key string) string {
	return "lock:booking:" + key
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}
