package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// BoardCache keeps rendered board payloads per job and sort order. Entries
// are dropped on any pipeline mutation for the job. A nil *BoardCache is a
// valid no-op cache.
type BoardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBoardCache(client *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{client: client, ttl: ttl}
}

func boardKey(jobID uuid.UUID, order string) string {
	return fmt.Sprintf("board:%s:%s", jobID, order)
}

func (c *BoardCache) Get(ctx context.Context, jobID uuid.UUID, order string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, boardKey(jobID, order)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *BoardCache) Set(ctx context.Context, jobID uuid.UUID, order string, payload []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, boardKey(jobID, order), payload, c.ttl)
}

func (c *BoardCache) Invalidate(ctx context.Context, jobID uuid.UUID) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("board:%s:*", jobID), 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
