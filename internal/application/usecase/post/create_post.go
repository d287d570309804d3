package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
)

func wrapPostErr(err error, postID uuid.UUID) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		return apperror.NewNotFound("post", postID.String())
	case errors.Is(err, post.ErrVersionConflict):
		return apperror.NewStore("post write kept conflicting", err)
	}
	return err
}

type CreatePostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewCreatePostUseCase(postRepo post.Repository, userRepo user.Repository) *CreatePostUseCase {
	return &CreatePostUseCase{postRepo: postRepo, userRepo: userRepo}
}

type CreatePostInput struct {
	OwnerID uuid.UUID
	Content string
}

type CreatePostOutput struct {
	PostID uuid.UUID
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, in CreatePostInput) (*CreatePostOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", in.OwnerID.String())
		}
		return nil, err
	}

	now := time.Now().UTC()
	// Image stays empty until the owner uploads one, matching the embedded
	// sub-entity placeholder convention.
	p := &post.Post{
		ID:        uuid.New(),
		OwnerID:   in.OwnerID,
		Content:   in.Content,
		Image:     "",
		Likes:     []uuid.UUID{},
		Comments:  []post.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("post validation failed", err)
	}
	if err := uc.postRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return &CreatePostOutput{PostID: p.ID}, nil
}
