package post

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type SetPostImageUseCase struct {
	writer   *service.PostWriter
	uploader service.Uploader
}

func NewSetPostImageUseCase(w *service.PostWriter, up service.Uploader) *SetPostImageUseCase {
	return &SetPostImageUseCase{writer: w, uploader: up}
}

func (uc *SetPostImageUseCase) Execute(ctx context.Context, postID uuid.UUID, file io.Reader) (*post.Post, error) {
	imageURL, err := uc.uploader.Upload(ctx, file, "posts/image", postID.String())
	if err != nil {
		return nil, apperror.NewUpload("failed to upload post image", err)
	}

	now := time.Now().UTC()
	p, err := uc.writer.WithPost(ctx, postID, func(p *post.Post) error {
		p.Image = imageURL
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		go uc.uploader.Delete(context.Background(), postID.String())
		return nil, wrapPostErr(err, postID)
	}
	return p, nil
}
