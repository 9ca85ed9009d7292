package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/booking-api/internal/metrics"
)

const weekKeyPrefix = "schedule:week:"

// ScheduleCache caches week-schedule projections in redis. Every method
// degrades to a no-op when redis is unavailable or the client is nil; the
// projector then just recomputes from the database.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScheduleCache(client *redis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{client: client, ttl: ttl}
}

func weekKey(barberID uint, weekStart time.Time) string {
	return fmt.Sprintf("%s%d:%s", weekKeyPrefix, barberID, weekStart.Format("2006-01-02"))
}

func barberPattern(barberID uint) string {
	return fmt.Sprintf("%s%d:*", weekKeyPrefix, barberID)
}

func (c *ScheduleCache) GetWeek(
	ctx context.Context,
	barberID uint,
	weekStart time.Time,
	dest any,
) bool {
	if c == nil || c.client == nil {
		return false
	}

	val, err := c.client.Get(ctx, weekKey(barberID, weekStart)).Result()
	if err != nil {
		metrics.ScheduleCacheHitsTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.ScheduleCacheHitsTotal.WithLabelValues("miss").Inc()
		return false
	}

	metrics.ScheduleCacheHitsTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *ScheduleCache) SetWeek(
	ctx context.Context,
	barberID uint,
	weekStart time.Time,
	v any,
) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, weekKey(barberID, weekStart), data, c.ttl).Err(); err != nil {
		log.Println("schedule cache set error:", err)
	}
}

// InvalidateBarber drops every cached week for a barber. Called after any
// booking or schedule write so projections never serve stale state beyond
// the TTL.
func (c *ScheduleCache) InvalidateBarber(ctx context.Context, barberID uint) {
	if c == nil || c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, barberPattern(barberID)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("schedule cache invalidate error:", err)
	}
}
