package career

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type DeleteExperienceUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewDeleteExperienceUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *DeleteExperienceUseCase {
	return &DeleteExperienceUseCase{writer: w, cache: cache, logger: log}
}

func (uc *DeleteExperienceUseCase) Execute(ctx context.Context, userID, expID uuid.UUID) error {
	_, err := uc.writer.WithUser(ctx, userID, func(u *user.User) error {
		if err := u.RemoveExperience(expID); err != nil {
			if errors.Is(err, user.ErrExperienceNotFound) {
				return apperror.NewNotFound("experience", expID.String())
			}
			return err
		}
		return nil
	})
	if err != nil {
		return wrapAggregateErr(err, userID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, userID)
	return nil
}
