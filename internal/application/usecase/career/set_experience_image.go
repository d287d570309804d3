package career

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type SetExperienceImageUseCase struct {
	writer   *service.UserWriter
	uploader service.Uploader
	cache    service.UserCache
	logger   logger.Logger
}

func NewSetExperienceImageUseCase(w *service.UserWriter, up service.Uploader, cache service.UserCache, log logger.Logger) *SetExperienceImageUseCase {
	return &SetExperienceImageUseCase{writer: w, uploader: up, cache: cache, logger: log}
}

type SetExperienceImageInput struct {
	UserID       uuid.UUID
	ExperienceID uuid.UUID
	File         io.Reader
}

type SetExperienceImageOutput struct {
	Experience user.Experience
}

// Execute uploads the image first; the aggregate only sees the returned
// reference string. An upload that succeeds but whose aggregate write fails
// leaves the stored state untouched, the orphaned object is cleaned up
// asynchronously.
func (uc *SetExperienceImageUseCase) Execute(ctx context.Context, in SetExperienceImageInput) (*SetExperienceImageOutput, error) {
	folder := fmt.Sprintf("experiences/image/%s", in.UserID.String())
	publicID := in.ExperienceID.String()

	imageURL, err := uc.uploader.Upload(ctx, in.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewUpload("failed to upload experience image", err)
	}

	now := time.Now().UTC()
	var updated user.Experience

	_, err = uc.writer.WithUser(ctx, in.UserID, func(u *user.User) error {
		e, err := u.SetExperienceImage(in.ExperienceID, imageURL, now)
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
		go uc.uploader.Delete(context.Background(), publicID)
		return nil, wrapAggregateErr(err, in.UserID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, in.UserID)
	return &SetExperienceImageOutput{Experience: updated}, nil
}
