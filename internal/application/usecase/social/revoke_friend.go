package social

import (
	"context"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type RevokeFriendUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewRevokeFriendUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *RevokeFriendUseCase {
	return &RevokeFriendUseCase{writer: w, cache: cache, logger: log}
}

// Execute drops the edge between the two users regardless of its current
// state. Revoking an edge that does not exist succeeds.
func (uc *RevokeFriendUseCase) Execute(ctx context.Context, userID, peerID uuid.UUID) error {
	if userID == peerID {
		return apperror.NewInvalidInput("cannot unfriend yourself", nil)
	}
	_, _, err := uc.writer.WithUserPair(ctx, userID, peerID, func(a, b *user.User) error {
		user.RevokeFriend(a, b)
		return nil
	})
	if err != nil {
		return wrapEdgeErr(err, userID, peerID)
	}

	invalidatePair(ctx, uc.cache, uc.logger, userID, peerID)
	return nil
}
