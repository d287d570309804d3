package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/adapters/event"
	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

var tracer = otel.Tracer("post_usecase")

type ToggleLikeUseCase struct {
	writer      *service.PostWriter
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewToggleLikeUseCase(w *service.PostWriter, userRepo user.Repository, k *event.KafkaProducerClient, log logger.Logger) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{writer: w, userRepo: userRepo, kafkaClient: k, logger: log}
}

type ToggleLikeOutput struct {
	Liked     bool
	LikeCount int
}

// Execute flips the actor's membership in the post's likes set. A repeated
// call undoes the previous one; duplicate likes cannot accumulate.
func (uc *ToggleLikeUseCase) Execute(ctx context.Context, postID, actorID uuid.UUID) (*ToggleLikeOutput, error) {
	ctx, span := tracer.Start(ctx, "ToggleLike")
	defer span.End()

	if _, err := uc.userRepo.FindByID(ctx, actorID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", actorID.String())
		}
		return nil, err
	}

	var out ToggleLikeOutput
	_, err := uc.writer.WithPost(ctx, postID, func(p *post.Post) error {
		out.Liked, out.LikeCount = p.ToggleLike(actorID)
		return nil
	})
	if err != nil {
		err = wrapPostErr(err, postID)
		span.RecordError(err)
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			eventType := event.PostEventTypeLiked
			if !out.Liked {
				eventType = event.PostEventTypeUnliked
			}
			payload := event.PostEventPayload{
				EventType: eventType,
				PostID:    postID,
				ActorID:   actorID,
				LikeCount: out.LikeCount,
			}
			if err := uc.kafkaClient.PublishPostEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka post like event", err, zap.String("post_id", postID.String()))
			}
		}()
	}

	return &out, nil
}
