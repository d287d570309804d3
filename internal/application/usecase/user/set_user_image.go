package user

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type SetUserImageUseCase struct {
	writer   *service.UserWriter
	uploader service.Uploader
	cache    service.UserCache
	logger   logger.Logger
}

func NewSetUserImageUseCase(w *service.UserWriter, up service.Uploader, cache service.UserCache, log logger.Logger) *SetUserImageUseCase {
	return &SetUserImageUseCase{writer: w, uploader: up, cache: cache, logger: log}
}

func (uc *SetUserImageUseCase) Execute(ctx context.Context, userID uuid.UUID, file io.Reader) (*user.User, error) {
	folder := fmt.Sprintf("users/image/%s", userID.String())

	imageURL, err := uc.uploader.Upload(ctx, file, folder, userID.String())
	if err != nil {
		return nil, apperror.NewUpload("failed to upload avatar", err)
	}

	now := time.Now().UTC()
	u, err := uc.writer.WithUser(ctx, userID, func(u *user.User) error {
		u.Image = imageURL
		u.UpdatedAt = now
		return nil
	})
	if err != nil {
		go uc.uploader.Delete(context.Background(), userID.String())
		return nil, wrapUserErr(err, userID)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, userID); err != nil {
			uc.logger.Warn("Failed to invalidate user cache", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	return u, nil
}
