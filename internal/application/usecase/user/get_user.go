package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	cache    service.UserCache
	logger   logger.Logger
}

func NewGetUserUseCase(repo user.Repository, cache service.UserCache, log logger.Logger) *GetUserUseCase {
	return &GetUserUseCase{userRepo: repo, cache: cache, logger: log}
}

// Execute reads through the cache; a cache failure falls back to the store
// rather than failing the request.
func (uc *GetUserUseCase) Execute(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, id)
		if err != nil {
			uc.logger.Warn("User cache read failed", zap.String("user_id", id.String()), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapUserErr(err, id)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, u); err != nil {
			uc.logger.Warn("User cache write failed", zap.String("user_id", id.String()), zap.Error(err))
		}
	}
	return u, nil
}
