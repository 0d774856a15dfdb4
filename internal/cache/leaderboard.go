package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "matchahub:leaderboard:points"

// LeaderboardEntry is one ranked row from the cache.
type LeaderboardEntry struct {
	UserID uint
	Points int64
}

// LeaderboardCache keeps point totals in a Redis sorted set so the
// leaderboard read path avoids an ORDER BY over the users table. It is an
// optional accelerator: a nil *LeaderboardCache disables caching and all
// methods are safe to call on nil.
type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(addr, password string, db int) *LeaderboardCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &LeaderboardCache{client: client}
}

// Ping verifies connectivity at startup.
func (c *LeaderboardCache) Ping() error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// AddPoints applies a delta to a user's cached score.
func (c *LeaderboardCache) AddPoints(userID uint, delta int64) error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.client.ZIncrBy(ctx, leaderboardKey, float64(delta), memberFor(userID)).Err()
}

// SetPoints overwrites a user's cached score (used when backfilling from the
// database).
func (c *LeaderboardCache) SetPoints(userID uint, points int64) error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(points),
		Member: memberFor(userID),
	}).Err()
}

// Top returns the highest-scored users, best first. An empty result with a
// nil error means the cache is cold and the caller should fall back to the
// database.
func (c *LeaderboardCache) Top(limit int) ([]LeaderboardEntry, error) {
	if c == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	zs, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, ok := parseMember(member)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{UserID: id, Points: int64(z.Score)})
	}
	return entries, nil
}

func memberFor(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func parseMember(member string) (uint, bool) {
	id, err := strconv.ParseUint(member, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
