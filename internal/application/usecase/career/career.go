package career

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

// wrapAggregateErr translates writer-level failures into the client-facing
// taxonomy. Sub-entity errors are translated at the point where the sub-entity
// id is known.
func wrapAggregateErr(err error, userID uuid.UUID) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return apperror.NewNotFound("user", userID.String())
	case errors.Is(err, user.ErrVersionConflict):
		return apperror.NewStore("aggregate write kept conflicting with concurrent writers", err)
	}
	return err
}

func invalidateUser(ctx context.Context, cache service.UserCache, log logger.Logger, id uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		log.Warn("Failed to invalidate user cache", zap.String("user_id", id.String()), zap.Error(err))
	}
}
