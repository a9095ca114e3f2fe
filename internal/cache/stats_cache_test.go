package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/redis/go-redis/v9"
)

func TestNewStatsCacheWithoutRedisIsNoop(t *testing.T) {
	c := NewStatsCache(&config.Config{})
	if _, ok := c.(NoopStatsCache); !ok {
		t.Fatalf("expected NoopStatsCache, got %T", c)
	}
	ctx := context.Background()
	if err := c.SetDashboard(ctx, &dto.DashboardResponse{TotalStudents: 3}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.GetDashboard(ctx)
	if err != nil || got != nil {
		t.Fatalf("noop get = %+v, %v", got, err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
}

func TestDashboardKey(t *testing.T) {
	if got := dashboardKey(); got != "campuspulse:stats:dashboard" {
		t.Fatalf("key = %q", got)
	}
}

func newRedisCache(t *testing.T, ttl time.Duration) (StatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisStatsCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisStatsCacheRoundTrip(t *testing.T) {
	c, mr := newRedisCache(t, 30*time.Second)
	ctx := context.Background()

	got, err := c.GetDashboard(ctx)
	if err != nil || got != nil {
		t.Fatalf("empty cache = %+v, %v", got, err)
	}

	generated := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	want := &dto.DashboardResponse{
		TotalStudents:    4,
		TotalResponses:   3,
		ParticipationPct: 75,
		AvgScore:         dto.ScoreDTO{Mean: 3.7, Percentage: 74, Severity: "Moderate"},
		DepartmentStats:  []dto.DepartmentStatDTO{{ID: "cs", Name: "Computer Science", AvgScore: 3.7, ResponseCount: 3, Severity: "Moderate"}},
		LowestCategory:   &dto.CategoryScoreDTO{Category: "Facilities", Average: 2.1, Severity: "Low"},
		GeneratedAt:      generated,
	}
	if err := c.SetDashboard(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL(dashboardKey()); ttl != 30*time.Second {
		t.Fatalf("ttl = %v", ttl)
	}

	got, err = c.GetDashboard(ctx)
	if err != nil || got == nil {
		t.Fatalf("get = %+v, %v", got, err)
	}
	if got.TotalStudents != 4 || got.ParticipationPct != 75 || got.AvgScore != want.AvgScore {
		t.Fatalf("totals = %+v", got)
	}
	if len(got.DepartmentStats) != 1 || got.DepartmentStats[0] != want.DepartmentStats[0] {
		t.Fatalf("departments = %+v", got.DepartmentStats)
	}
	if got.LowestCategory == nil || *got.LowestCategory != *want.LowestCategory {
		t.Fatalf("lowest category = %+v", got.LowestCategory)
	}
	if !got.GeneratedAt.Equal(generated) {
		t.Fatalf("generated at = %v", got.GeneratedAt)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if got, err := c.GetDashboard(ctx); err != nil || got != nil {
		t.Fatalf("after invalidate = %+v, %v", got, err)
	}
}

func TestRedisStatsCacheExpires(t *testing.T) {
	c, mr := newRedisCache(t, 10*time.Second)
	ctx := context.Background()
	if err := c.SetDashboard(ctx, &dto.DashboardResponse{TotalStudents: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(11 * time.Second)
	if got, err := c.GetDashboard(ctx); err != nil || got != nil {
		t.Fatalf("expired entry = %+v, %v", got, err)
	}
}

func TestRedisStatsCacheCorruptEntry(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	if err := mr.Set(dashboardKey(), "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := c.GetDashboard(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRedisStatsCacheUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	c := NewRedisStatsCache(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), time.Minute)
	defer c.Close()
	mr.Close()
	if _, err := c.GetDashboard(context.Background()); err == nil {
		t.Fatalf("expected error from a stopped server")
	}
}
