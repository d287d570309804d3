package career

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

var tracer = otel.Tracer("career_usecase")

type CreateExperienceUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewCreateExperienceUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *CreateExperienceUseCase {
	return &CreateExperienceUseCase{writer: w, cache: cache, logger: log}
}

type CreateExperienceInput struct {
	UserID      uuid.UUID
	Role        string
	Company     string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	Area        string
}

type CreateExperienceOutput struct {
	Experience user.Experience
}

func (uc *CreateExperienceUseCase) Execute(ctx context.Context, in CreateExperienceInput) (*CreateExperienceOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateExperience")
	defer span.End()

	now := time.Now().UTC()
	var created user.Experience

	_, err := uc.writer.WithUser(ctx, in.UserID, func(u *user.User) error {
		e := user.Experience{
			Role:        in.Role,
			Company:     in.Company,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Description: in.Description,
			Area:        in.Area,
		}
		c, err := u.AddExperience(e, now)
		if err != nil {
			return apperror.NewInvalidInput("experience validation failed", err)
		}
		created = c
		return nil
	})
	if err != nil {
		err = wrapAggregateErr(err, in.UserID)
		span.RecordError(err)
		return nil, err
	}

	invalidateUser(ctx, uc.cache, uc.logger, in.UserID)
	span.SetAttributes(attribute.String("experience_id", created.ID.String()))
	return &CreateExperienceOutput{Experience: created}, nil
}
