package career

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/subresource"
	"github.com/hoangnp/careernet/internal/domain/user"
)

type ExportExperiencesUseCase struct {
	users user.Repository
}

func NewExportExperiencesUseCase(users user.Repository) *ExportExperiencesUseCase {
	return &ExportExperiencesUseCase{users: users}
}

type ExportOutput struct {
	Filename string
	Header   []string
	Records  [][]string
}

// Execute projects the experience collection into flat records for the CSV
// stream. fields defaults to the standard export list when empty.
func (uc *ExportExperiencesUseCase) Execute(ctx context.Context, userID uuid.UUID, fields []string) (*ExportOutput, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapAggregateErr(err, userID)
	}

	if len(fields) == 0 {
		fields = user.ExperienceExportFields
	}

	records := subresource.Project(u.Experiences, fields, user.Experience.ExportField)

	return &ExportOutput{
		Filename: fmt.Sprintf("%s-experiences.csv", strings.ToLower(u.Name)),
		Header:   fields,
		Records:  records,
	}, nil
}
