package service

import (
	"context"

	"github.com/google/uuid"
)

// LikeLeaderboard keeps a running ranking of posts by like count, maintained
// off the hot path by the event worker.
type LikeLeaderboard interface {
	Adjust(ctx context.Context, postID uuid.UUID, delta int) error
	Remove(ctx context.Context, postID uuid.UUID) error
}
