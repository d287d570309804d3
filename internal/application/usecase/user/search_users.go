package user

import (
	"context"

	"github.com/hoangnp/careernet/internal/domain/user"
)

type SearchUsersUseCase struct {
	userRepo user.Repository
}

func NewSearchUsersUseCase(repo user.Repository) *SearchUsersUseCase {
	return &SearchUsersUseCase{userRepo: repo}
}

type SearchUsersInput struct {
	Query string
	Page  int
	Limit int
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, in SearchUsersInput) ([]*user.User, error) {
	if in.Limit <= 0 {
		in.Limit = 20
	}
	if in.Page <= 0 {
		in.Page = 1
	}
	offset := (in.Page - 1) * in.Limit
	return uc.userRepo.SearchByName(ctx, in.Query, in.Limit, offset)
}
