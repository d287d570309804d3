package social

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

// Friend-edge transitions always load and persist both endpoints in one
// transaction, so no reader ever observes the two views disagreeing.

func wrapEdgeErr(err error, aID, bID uuid.UUID) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return apperror.NewNotFound("user", aID.String()+" or "+bID.String())
	case errors.Is(err, user.ErrSelfEdge):
		return apperror.NewInvalidInput("cannot befriend yourself", err)
	case errors.Is(err, user.ErrEdgeExists), errors.Is(err, user.ErrNoPendingRequest):
		return apperror.NewConflict(err.Error())
	case errors.Is(err, user.ErrVersionConflict):
		return apperror.NewStore("relationship write kept conflicting", err)
	}
	return err
}

func invalidatePair(ctx context.Context, cache service.UserCache, log logger.Logger, a, b uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, a, b); err != nil {
		log.Warn("Failed to invalidate user cache", zap.Error(err))
	}
}

type RequestFriendUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewRequestFriendUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *RequestFriendUseCase {
	return &RequestFriendUseCase{writer: w, cache: cache, logger: log}
}

type RequestFriendOutput struct {
	Edge user.EdgeState
}

func (uc *RequestFriendUseCase) Execute(ctx context.Context, fromID, toID uuid.UUID) (*RequestFriendOutput, error) {
	from, _, err := uc.writer.WithUserPair(ctx, fromID, toID, func(from, to *user.User) error {
		return user.RequestFriend(from, to)
	})
	if err != nil {
		return nil, wrapEdgeErr(err, fromID, toID)
	}

	invalidatePair(ctx, uc.cache, uc.logger, fromID, toID)
	return &RequestFriendOutput{Edge: from.EdgeWith(toID)}, nil
}
