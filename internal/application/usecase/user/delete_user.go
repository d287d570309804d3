package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/logger"
)

type DeleteUserUseCase struct {
	userRepo user.Repository
	cache    service.UserCache
	logger   logger.Logger
}

func NewDeleteUserUseCase(repo user.Repository, cache service.UserCache, log logger.Logger) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: repo, cache: cache, logger: log}
}

// Execute removes the aggregate and, with it, every embedded sub-entity.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return wrapUserErr(err, id)
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, id); err != nil {
			uc.logger.Warn("Failed to invalidate user cache", zap.String("user_id", id.String()), zap.Error(err))
		}
	}
	return nil
}
