package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type AddCommentUseCase struct {
	writer   *service.PostWriter
	userRepo user.Repository
}

func NewAddCommentUseCase(w *service.PostWriter, userRepo user.Repository) *AddCommentUseCase {
	return &AddCommentUseCase{writer: w, userRepo: userRepo}
}

type AddCommentInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, in AddCommentInput) (post.Comment, error) {
	if _, err := uc.userRepo.FindByID(ctx, in.AuthorID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return post.Comment{}, apperror.NewNotFound("user", in.AuthorID.String())
		}
		return post.Comment{}, err
	}

	now := time.Now().UTC()
	var created post.Comment

	_, err := uc.writer.WithPost(ctx, in.PostID, func(p *post.Post) error {
		c, err := p.AddComment(in.AuthorID, in.Text, now)
		if err != nil {
			return apperror.NewInvalidInput("comment validation failed", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return post.Comment{}, wrapPostErr(err, in.PostID)
	}
	return created, nil
}
