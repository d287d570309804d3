package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/post"
)

type DeletePostUseCase struct {
	postRepo post.Repository
}

func NewDeletePostUseCase(postRepo post.Repository) *DeletePostUseCase {
	return &DeletePostUseCase{postRepo: postRepo}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return wrapPostErr(err, id)
	}
	return nil
}
