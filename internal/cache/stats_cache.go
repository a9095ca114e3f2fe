package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// StatsCache holds the computed admin dashboard between writes.
type StatsCache interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	SetDashboard(ctx context.Context, d *dto.DashboardResponse) error
	// Invalidate is called after every write that can change the dashboard.
	Invalidate(ctx context.Context) error
	Close() error
}

const keyPrefix = "campuspulse"

func dashboardKey() string {
	return fmt.Sprintf("%s:stats:dashboard", keyPrefix)
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache returns a redis-backed cache, or a no-op one when REDIS_ADDR is unset.
func NewStatsCache(cfg *config.Config) StatsCache {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, dashboard caching disabled")
		return NoopStatsCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return NewRedisStatsCache(client, cfg.Redis.StatsTTL)
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisStatsCache{client: client, ttl: ttl}
}

func (c *redisStatsCache) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	data, err := c.client.Get(ctx, dashboardKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d dto.DashboardResponse
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *redisStatsCache) SetDashboard(ctx context.Context, d *dto.DashboardResponse) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardKey(), data, c.ttl).Err()
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, dashboardKey()).Err()
}

func (c *redisStatsCache) Close() error {
	return c.client.Close()
}

// NoopStatsCache never stores anything; every read is a miss.
type NoopStatsCache struct{}

func (NoopStatsCache) GetDashboard(context.Context) (*dto.DashboardResponse, error) { return nil, nil }
func (NoopStatsCache) SetDashboard(context.Context, *dto.DashboardResponse) error  { return nil }
func (NoopStatsCache) Invalidate(context.Context) error                            { return nil }
func (NoopStatsCache) Close() error                                                { return nil }
