package career

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/subresource"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

// EducationUseCase bundles all education sub-resource operations; the
// collection mechanics are shared with experiences through the generic
// subresource package.
type EducationUseCase struct {
	users    user.Repository
	writer   *service.UserWriter
	uploader service.Uploader
	cache    service.UserCache
	logger   logger.Logger
}

func NewEducationUseCase(users user.Repository, w *service.UserWriter, up service.Uploader, cache service.UserCache, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{users: users, writer: w, uploader: up, cache: cache, logger: log}
}

type CreateEducationInput struct {
	UserID      uuid.UUID
	School      string
	Degree      string
	Field       string
	StartDate   *time.Time
	EndDate     *time.Time
	Grade       string
	Activity    string
	Description string
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in CreateEducationInput) (user.Education, error) {
	now := time.Now().UTC()
	var created user.Education

	_, err := uc.writer.WithUser(ctx, in.UserID, func(u *user.User) error {
		e := user.Education{
			School:      in.School,
			Degree:      in.Degree,
			Field:       in.Field,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Grade:       in.Grade,
			Activity:    in.Activity,
			Description: in.Description,
		}
		c, err := u.AddEducation(e, now)
		if err != nil {
			return apperror.NewInvalidInput("education validation failed", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return user.Education{}, wrapAggregateErr(err, in.UserID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, in.UserID)
	return created, nil
}

func (uc *EducationUseCase) GetEducation(ctx context.Context, userID, eduID uuid.UUID) (user.Education, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return user.Education{}, wrapAggregateErr(err, userID)
	}
	e, err := u.EducationByID(eduID)
	if err != nil {
		if errors.Is(err, user.ErrEducationNotFound) {
			return user.Education{}, apperror.NewNotFound("education", eduID.String())
		}
		return user.Education{}, err
	}
	return e, nil
}

func (uc *EducationUseCase) ListEducations(ctx context.Context, userID uuid.UUID) ([]user.Education, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapAggregateErr(err, userID)
	}
	return u.Educations, nil
}

func (uc *EducationUseCase) UpdateEducation(ctx context.Context, userID, eduID uuid.UUID, patch user.EducationPatch) (user.Education, error) {
	now := time.Now().UTC()
	var updated user.Education

	_, err := uc.writer.WithUser(ctx, userID, func(u *user.User) error {
		e, err := u.UpdateEducation(eduID, patch, now)
		if err != nil {
			if errors.Is(err, user.ErrEducationNotFound) {
				return apperror.NewNotFound("education", eduID.String())
			}
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return user.Education{}, wrapAggregateErr(err, userID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, userID)
	return updated, nil
}

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, userID, eduID uuid.UUID) error {
	_, err := uc.writer.WithUser(ctx, userID, func(u *user.User) error {
		if err := u.RemoveEducation(eduID); err != nil {
			if errors.Is(err, user.ErrEducationNotFound) {
				return apperror.NewNotFound("education", eduID.String())
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

func (uc *EducationUseCase) SetEducationImage(ctx context.Context, userID, eduID uuid.UUID, file io.Reader) (user.Education, error) {
	folder := fmt.Sprintf("educations/image/%s", userID.String())
	publicID := eduID.String()

	imageURL, err := uc.uploader.Upload(ctx, file, folder, publicID)
	if err != nil {
		return user.Education{}, apperror.NewUpload("failed to upload education image", err)
	}

	now := time.Now().UTC()
	var updated user.Education

	_, err = uc.writer.WithUser(ctx, userID, func(u *user.User) error {
		e, err := u.SetEducationImage(eduID, imageURL, now)
		if err != nil {
			if errors.Is(err, user.ErrEducationNotFound) {
				return apperror.NewNotFound("education", eduID.String())
			}
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		go uc.uploader.Delete(context.Background(), publicID)
		return user.Education{}, wrapAggregateErr(err, userID)
	}

	invalidateUser(ctx, uc.cache, uc.logger, userID)
	return updated, nil
}

func (uc *EducationUseCase) ExportEducations(ctx context.Context, userID uuid.UUID, fields []string) (*ExportOutput, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapAggregateErr(err, userID)
	}

	if len(fields) == 0 {
		fields = user.EducationExportFields
	}

	return &ExportOutput{
		Filename: fmt.Sprintf("%s-educations.csv", strings.ToLower(u.Name)),
		Header:   fields,
		Records:  subresource.Project(u.Educations, fields, user.Education.ExportField),
	}, nil
}
