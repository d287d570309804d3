package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hoangnp/careernet/internal/application/service"
)

const likeLeaderboardKey = "posts:likes:leaderboard"

type redisLikeLeaderboard struct {
	rdb *redis.Client
}

func NewRedisLikeLeaderboard(rdb *redis.Client) service.LikeLeaderboard {
	return &redisLikeLeaderboard{rdb: rdb}
}

func (l *redisLikeLeaderboard) Adjust(ctx context.Context, postID uuid.UUID, delta int) error {
	if err := l.rdb.ZIncrBy(ctx, likeLeaderboardKey, float64(delta), postID.String()).Err(); err != nil {
		return fmt.Errorf("failed to adjust like leaderboard: %w", err)
	}
	return nil
}

func (l *redisLikeLeaderboard) Remove(ctx context.Context, postID uuid.UUID) error {
	if err := l.rdb.ZRem(ctx, likeLeaderboardKey, postID.String()).Err(); err != nil {
		return fmt.Errorf("failed to remove post from like leaderboard: %w", err)
	}
	return nil
}
