package post

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type UpdatePostUseCase struct {
	writer *service.PostWriter
}

func NewUpdatePostUseCase(w *service.PostWriter) *UpdatePostUseCase {
	return &UpdatePostUseCase{writer: w}
}

type UpdatePostInput struct {
	PostID  uuid.UUID
	Content *string
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, in UpdatePostInput) (*post.Post, error) {
	now := time.Now().UTC()
	p, err := uc.writer.WithPost(ctx, in.PostID, func(p *post.Post) error {
		if in.Content != nil {
			p.Content = *in.Content
		}
		if err := p.Validate(); err != nil {
			return apperror.NewInvalidInput("post validation failed", err)
		}
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, wrapPostErr(err, in.PostID)
	}
	return p, nil
}
