package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/adapters/event"
	"github.com/hoangnp/careernet/internal/domain/subresource"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/auth"
	"github.com/hoangnp/careernet/pkg/logger"
)

func wrapUserErr(err error, userID uuid.UUID) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return apperror.NewNotFound("user", userID.String())
	case errors.Is(err, user.ErrVersionConflict):
		return apperror.NewStore("user write kept conflicting", err)
	}
	return err
}

type RegisterUserUseCase struct {
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewRegisterUserUseCase(repo user.Repository, k *event.KafkaProducerClient, log logger.Logger) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: repo, kafkaClient: k, logger: log}
}

type RegisterUserInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Bio      string
	Title    string
	Area     string
	Image    string
}

type RegisterUserOutput struct {
	User *user.User
}

// Execute creates the parent aggregate. Sub-entity collections start empty;
// everything after this point mutates the aggregate in place.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*RegisterUserOutput, error) {
	if in.Password == "" {
		return nil, apperror.NewInvalidInput("password is required", nil)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	image := in.Image
	if image == "" {
		image = subresource.DefaultImage
	}
	u := &user.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        in.Email,
		Bio:          in.Bio,
		Title:        in.Title,
		Area:         in.Area,
		Image:        image,
		PasswordHash: hash,
		Experiences:  []user.Experience{},
		Educations:   []user.Education{},
		Social: user.Social{
			Friends: []uuid.UUID{},
			Sent:    []uuid.UUID{},
			Pending: []uuid.UUID{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("user validation failed", err)
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			payload := event.UserEventPayload{
				EventType: event.UserEventTypeRegistered,
				UserID:    u.ID,
			}
			if err := uc.kafkaClient.PublishUserEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka 'user.registered' event", err, zap.String("user_id", u.ID.String()))
			}
		}()
	}

	return &RegisterUserOutput{User: u}, nil
}
