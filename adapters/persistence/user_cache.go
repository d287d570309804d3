package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
)

const userCacheTTL = 5 * time.Minute

type redisUserCache struct {
	rdb *redis.Client
}

func NewRedisUserCache(rdb *redis.Client) service.UserCache {
	return &redisUserCache{rdb: rdb}
}

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (c *redisUserCache) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	data, err := c.rdb.Get(ctx, userCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user cache: %w", err)
	}

	u := &user.User{}
	if err := json.Unmarshal(data, u); err != nil {
		// A stale or corrupt entry behaves like a miss.
		c.rdb.Del(ctx, userCacheKey(id))
		return nil, nil
	}
	return u, nil
}

func (c *redisUserCache) Set(ctx context.Context, u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user for cache: %w", err)
	}
	return c.rdb.Set(ctx, userCacheKey(u.ID), data, userCacheTTL).Err()
}

func (c *redisUserCache) Invalidate(ctx context.Context, ids ...uuid.UUID) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userCacheKey(id)
	}
	return c.rdb.Del(ctx, keys...).Err()
}
