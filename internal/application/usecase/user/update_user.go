package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type UpdateUserUseCase struct {
	writer *service.UserWriter
	cache  service.UserCache
	logger logger.Logger
}

func NewUpdateUserUseCase(w *service.UserWriter, cache service.UserCache, log logger.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{writer: w, cache: cache, logger: log}
}

// UpdateUserInput is a merge-patch over the profile fields; nil keeps the
// stored value.
type UpdateUserInput struct {
	UserID  uuid.UUID
	Name    *string
	Surname *string
	Bio     *string
	Title   *string
	Area    *string
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, in UpdateUserInput) (*user.User, error) {
	now := time.Now().UTC()
	u, err := uc.writer.WithUser(ctx, in.UserID, func(u *user.User) error {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Surname != nil {
			u.Surname = *in.Surname
		}
		if in.Bio != nil {
			u.Bio = *in.Bio
		}
		if in.Title != nil {
			u.Title = *in.Title
		}
		if in.Area != nil {
			u.Area = *in.Area
		}
		if err := u.Validate(); err != nil {
			return apperror.NewInvalidInput("user validation failed", err)
		}
		u.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, wrapUserErr(err, in.UserID)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, in.UserID); err != nil {
			uc.logger.Warn("Failed to invalidate user cache", zap.String("user_id", in.UserID.String()), zap.Error(err))
		}
	}
	return u, nil
}
