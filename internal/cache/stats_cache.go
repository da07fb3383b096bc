// Package cache keeps per-user task statistics in Redis. Reads fall back to
// the database on any Redis failure and every task write evicts the entry.
package cache

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	log "github.com/sirupsen/logrus"

	model "task-tracker.com/task-tracker/internal/models"
)

const statsKeyPrefix = "task-tracker:stats:"

type StatsCache struct {
	client rueidis.Client
	ttl    time.Duration
}

// NewStatsCache returns nil when client is nil; a nil *StatsCache is a valid
// no-op cache.
func NewStatsCache(client rueidis.Client, ttl time.Duration) *StatsCache {
	if client == nil {
		return nil
	}
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context, userID string) (*model.TaskStats, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Do(ctx, c.client.B().Get().Key(statsKey(userID)).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			log.WithError(err).WithField("user_id", userID).Warn("stats cache read failed")
		}
		return nil, false
	}

	var stats model.TaskStats
	if err := sonic.Unmarshal(data, &stats); err != nil {
		c.Evict(ctx, userID)
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, userID string, stats *model.TaskStats) {
	if c == nil || c.ttl < time.Second {
		return
	}

	data, err := sonic.Marshal(stats)
	if err != nil {
		log.WithError(err).Warn("stats cache encode failed")
		return
	}

	cmd := c.client.B().Set().Key(statsKey(userID)).Value(rueidis.BinaryString(data)).
		ExSeconds(int64(c.ttl / time.Second)).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("stats cache write failed")
	}
}

func (c *StatsCache) Evict(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Do(ctx, c.client.B().Del().Key(statsKey(userID)).Build()).Error(); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("stats cache evict failed")
	}
}

func statsKey(userID string) string {
	return statsKeyPrefix + userID
}
