package career

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
)

type GetExperienceUseCase struct {
	users user.Repository
}

func NewGetExperienceUseCase(users user.Repository) *GetExperienceUseCase {
	return &GetExperienceUseCase{users: users}
}

// GetExperience reads a single sub-entity; ListExperiences returns the whole
// ordered collection.

func (uc *GetExperienceUseCase) GetExperience(ctx context.Context, userID, expID uuid.UUID) (user.Experience, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return user.Experience{}, wrapAggregateErr(err, userID)
	}
	e, err := u.ExperienceByID(expID)
	if err != nil {
		if errors.Is(err, user.ErrExperienceNotFound) {
			return user.Experience{}, apperror.NewNotFound("experience", expID.String())
		}
		return user.Experience{}, err
	}
	return e, nil
}

func (uc *GetExperienceUseCase) ListExperiences(ctx context.Context, userID uuid.UUID) ([]user.Experience, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapAggregateErr(err, userID)
	}
	return u.Experiences, nil
}
