package social

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/adapters/event"
	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/logger"
)

type AcceptFriendUseCase struct {
	writer      *service.UserWriter
	cache       service.UserCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewAcceptFriendUseCase(w *service.UserWriter, cache service.UserCache, k *event.KafkaProducerClient, log logger.Logger) *AcceptFriendUseCase {
	return &AcceptFriendUseCase{writer: w, cache: cache, kafkaClient: k, logger: log}
}

type AcceptFriendOutput struct {
	Edge user.EdgeState
}

// Execute is invoked by the target of a pending request; targetID accepts the
// request previously sent by requesterID.
func (uc *AcceptFriendUseCase) Execute(ctx context.Context, targetID, requesterID uuid.UUID) (*AcceptFriendOutput, error) {
	target, _, err := uc.writer.WithUserPair(ctx, targetID, requesterID, func(target, requester *user.User) error {
		return user.AcceptFriend(target, requester)
	})
	if err != nil {
		return nil, wrapEdgeErr(err, targetID, requesterID)
	}

	invalidatePair(ctx, uc.cache, uc.logger, targetID, requesterID)

	if uc.kafkaClient != nil {
		go func() {
			payload := event.UserEventPayload{
				EventType: event.UserEventTypeFriendAccepted,
				UserID:    targetID,
				PeerID:    requesterID,
			}
			if err := uc.kafkaClient.PublishUserEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka 'friend.accepted' event", err, zap.String("user_id", targetID.String()))
			}
		}()
	}

	return &AcceptFriendOutput{Edge: target.EdgeWith(requesterID)}, nil
}
