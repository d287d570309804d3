package post

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoangnp/careernet/adapters/event"
	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/pkg/logger"
)

// ProcessPostEventUseCase is the worker-side consumer of post events. It keeps
// the like leaderboard in step with the toggles recorded by the API.
type ProcessPostEventUseCase struct {
	leaderboard service.LikeLeaderboard
	logger      logger.Logger
}

func NewProcessPostEventUseCase(lb service.LikeLeaderboard, log logger.Logger) *ProcessPostEventUseCase {
	return &ProcessPostEventUseCase{leaderboard: lb, logger: log}
}

func (uc *ProcessPostEventUseCase) Execute(ctx context.Context, payload event.PostEventPayload) error {
	switch payload.EventType {
	case event.PostEventTypeLiked:
		return uc.leaderboard.Adjust(ctx, payload.PostID, 1)
	case event.PostEventTypeUnliked:
		return uc.leaderboard.Adjust(ctx, payload.PostID, -1)
	default:
		uc.logger.Warn("Unknown post event type, skipping", zap.String("event_type", payload.EventType))
		return nil
	}
}
