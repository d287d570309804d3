package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/user"
)

// UserCache is a read-through cache in front of the user repository. Get
// returns (nil, nil) on a miss; Invalidate is called after every aggregate
// mutation.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	Set(ctx context.Context, u *user.User) error
	Invalidate(ctx context.Context, ids ...uuid.UUID) error
}
