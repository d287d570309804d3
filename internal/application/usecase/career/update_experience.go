package career

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type UpdateExperienceUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewUpdateExperienceUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *UpdateExperienceUseCase {
	return &UpdateExperienceUseCase{writer: w, cache: cache, logger: log}
}

type UpdateExperienceInput struct {
	UserID       uuid.UUID
	ExperienceID uuid.UUID
	Patch        user.ExperiencePatch
}

type UpdateExperienceOutput struct {
	Experience user.Experience
}

func (uc *UpdateExperienceUseCase) Execute(ctx context.Context, in UpdateExperienceInput) (*UpdateExperienceOutput, error) {
	now := time.Now().UTC()
	var updated user.Experience

	_, err := uc.writer.WithUser(ctx, in.UserID, func(u *user.User) error {
		e, err := u.UpdateExperience(in.ExperienceID, in.Patch, now)
		if err != nil {
			if errors.Is(err, user.ErrExperienceNotFound) {
				return apperror.NewNotFound("experience", in.ExperienceID.String())
			}
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, wrapAggregateErr(err, in.UserID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, in.UserID)
	return &UpdateExperienceOutput{Experience: updated}, nil
}
