package post

import (
	"context"

	"github.com/hoangnp/careernet/internal/domain/post"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(postRepo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: postRepo}
}

type ListPostsInput struct {
	Page  int
	Limit int
}

type ListPostsOutput struct {
	Posts []*post.Post
	Total int64
	Page  int
	Limit int
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, in ListPostsInput) (*ListPostsOutput, error) {
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Page <= 0 {
		in.Page = 1
	}
	offset := (in.Page - 1) * in.Limit

	posts, err := uc.postRepo.List(ctx, in.Limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPostsOutput{Posts: posts, Total: total, Page: in.Page, Limit: in.Limit}, nil
}
