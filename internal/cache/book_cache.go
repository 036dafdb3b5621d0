package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookhub/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// BookCache keeps recently read book records in Redis so shelf pages don't
// hit Postgres on every load. Every method is a no-op when the cache was
// constructed without a live connection; a cache miss and a cache outage look
// the same to callers.
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache connects to Redis and verifies the connection.
func NewBookCache(redisAddr, password string, ttl time.Duration) (*BookCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &BookCache{client: rdb, ttl: ttl}, nil
}

func bookKey(userID int64, bookID string) string {
	return fmt.Sprintf("book:user:%d:book:%s", userID, bookID)
}

// Get returns the cached record, or (nil, nil) on a miss.
func (c *BookCache) Get(ctx context.Context, userID int64, bookID string) (*models.BookRecord, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, bookKey(userID, bookID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record models.BookRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// stale or corrupt entry, treat as a miss
		return nil, nil
	}
	return &record, nil
}

// Set stores the record under its (userid, bookid) key with the cache TTL.
func (c *BookCache) Set(ctx context.Context, record *models.BookRecord) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, bookKey(record.UserID, record.BookID), raw, c.ttl).Err()
}

// Invalidate drops the cached record after an upsert or delete.
func (c *BookCache) Invalidate(ctx context.Context, userID int64, bookID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, bookKey(userID, bookID)).Err()
}

// Close releases the underlying Redis connection.
func (c *BookCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
