package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/post"
)

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(postRepo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: postRepo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapPostErr(err, id)
	}
	return p, nil
}
