package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores built summaries per (employee, range). The Kafka
// consumer invalidates an employee's entries when a new punch lands.
type Cache interface {
	GetSummaries(ctx context.Context, key string) ([]DailySummary, bool)
	SetSummaries(ctx context.Context, key string, summaries []DailySummary)
	InvalidateEmployee(ctx context.Context, employeeID string) error
}

func summaryKey(employeeID, start, end string) string {
	return fmt.Sprintf("report:summary:%s:%s:%s", employeeID, start, end)
}

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisCache{rdb: rdb, ttl: ttl}
}

func (c *redisCache) GetSummaries(ctx context.Context, key string) ([]DailySummary, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var summaries []DailySummary
	if err := json.Unmarshal([]byte(val), &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *redisCache) SetSummaries(ctx context.Context, key string, summaries []DailySummary) {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		zap.L().Warn("report cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisCache) InvalidateEmployee(ctx context.Context, employeeID string) error {
	pattern := fmt.Sprintf("report:summary:%s:*", employeeID)

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
