package career

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

// memUserRepo is an in-memory user.Repository with real version-check
// semantics, so the writer's retry loop is exercised the same way it is
// against postgres.
type memUserRepo struct {
	users map[uuid.UUID]*user.User
	// failUpdates makes the next N Update calls lose the version race.
	failUpdates int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func copyUser(u *user.User) *user.User {
	cp := *u
	cp.Experiences = append([]user.Experience{}, u.Experiences...)
	cp.Educations = append([]user.Education{}, u.Educations...)
	cp.Social = user.Social{
		Friends: append([]uuid.UUID{}, u.Social.Friends...),
		Sent:    append([]uuid.UUID{}, u.Social.Sent...),
		Pending: append([]uuid.UUID{}, u.Social.Pending...),
	}
	return &cp
}

func (r *memUserRepo) Save(_ context.Context, u *user.User) error {
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	stored, ok := r.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	if r.failUpdates > 0 {
		r.failUpdates--
		return user.ErrVersionConflict
	}
	if stored.Version != u.Version {
		return user.ErrVersionConflict
	}
	u.Version++
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) UpdatePair(ctx context.Context, a, b *user.User) error {
	if err := r.Update(ctx, a); err != nil {
		return err
	}
	return r.Update(ctx, b)
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) SearchByName(_ context.Context, query string, limit, offset int) ([]*user.User, error) {
	var out []*user.User
	for _, u := range r.users {
		if query == "" || strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
			out = append(out, copyUser(u))
		}
	}
	return out, nil
}

func seedUser(t *testing.T, repo *memUserRepo) *user.User {
	t.Helper()
	u := &user.User{
		ID:          uuid.New(),
		Name:        "Nguyen",
		Surname:     "Hoang",
		Email:       "nguyen@example.com",
		Bio:         "Engineer",
		Title:       "Engineer",
		Area:        "Hanoi",
		Image:       "https://picsum.photos/200/300",
		Experiences: []user.Experience{},
		Educations:  []user.Education{},
		Social:      user.Social{Friends: []uuid.UUID{}, Sent: []uuid.UUID{}, Pending: []uuid.UUID{}},
	}
	assert.NoError(t, repo.Save(context.Background(), u))
	return u
}

func TestCreateExperience(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := NewCreateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	output, err := uc.Execute(context.Background(), CreateExperienceInput{
		UserID:  u.ID,
		Role:    "Engineer",
		Company: "Acme",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Experience.ID)

	stored, err := repo.FindByID(context.Background(), u.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Experiences, 1)
	assert.Equal(t, "Acme", stored.Experiences[0].Company)
}

func TestCreateExperience_UserNotFound(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewCreateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateExperienceInput{
		UserID:  uuid.New(),
		Role:    "Engineer",
		Company: "Acme",
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateExperience_ValidationFailure(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := NewCreateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateExperienceInput{UserID: u.ID, Role: "Engineer"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	stored, _ := repo.FindByID(context.Background(), u.ID)
	assert.Empty(t, stored.Experiences)
}

func TestCreateExperience_RetriesOnVersionConflict(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	repo.failUpdates = 2
	uc := NewCreateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	output, err := uc.Execute(context.Background(), CreateExperienceInput{
		UserID:  u.ID,
		Role:    "Engineer",
		Company: "Acme",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Experience.ID)

	stored, _ := repo.FindByID(context.Background(), u.ID)
	assert.Len(t, stored.Experiences, 1)
}

func TestCreateExperience_GivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	repo.failUpdates = 10
	uc := NewCreateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateExperienceInput{
		UserID:  u.ID,
		Role:    "Engineer",
		Company: "Acme",
	})

	assert.ErrorIs(t, err, apperror.ErrStore)
}

func TestUpdateExperience_MergePatch(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	writer := service.NewUserWriter(repo)

	createUC := NewCreateExperienceUseCase(writer, nil, logger.NewNopLogger())
	created, err := createUC.Execute(context.Background(), CreateExperienceInput{
		UserID:      u.ID,
		Role:        "Engineer",
		Company:     "Acme",
		Description: "Built things",
	})
	assert.NoError(t, err)

	updateUC := NewUpdateExperienceUseCase(writer, nil, logger.NewNopLogger())
	newCompany := "Beta"
	output, err := updateUC.Execute(context.Background(), UpdateExperienceInput{
		UserID:       u.ID,
		ExperienceID: created.Experience.ID,
		Patch:        user.ExperiencePatch{Company: &newCompany},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Beta", output.Experience.Company)
	assert.Equal(t, "Engineer", output.Experience.Role)
	assert.Equal(t, "Built things", output.Experience.Description)
}

func TestUpdateExperience_NotFound(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := NewUpdateExperienceUseCase(service.NewUserWriter(repo), nil, logger.NewNopLogger())

	role := "Ghost"
	_, err := uc.Execute(context.Background(), UpdateExperienceInput{
		UserID:       u.ID,
		ExperienceID: uuid.New(),
		Patch:        user.ExperiencePatch{Role: &role},
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteExperience(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	writer := service.NewUserWriter(repo)

	createUC := NewCreateExperienceUseCase(writer, nil, logger.NewNopLogger())
	created, _ := createUC.Execute(context.Background(), CreateExperienceInput{
		UserID: u.ID, Role: "Engineer", Company: "Acme",
	})

	deleteUC := NewDeleteExperienceUseCase(writer, nil, logger.NewNopLogger())
	assert.NoError(t, deleteUC.Execute(context.Background(), u.ID, created.Experience.ID))

	stored, _ := repo.FindByID(context.Background(), u.ID)
	assert.Empty(t, stored.Experiences)

	err := deleteUC.Execute(context.Background(), u.ID, created.Experience.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestExportExperiences(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	writer := service.NewUserWriter(repo)

	createUC := NewCreateExperienceUseCase(writer, nil, logger.NewNopLogger())
	_, err := createUC.Execute(context.Background(), CreateExperienceInput{
		UserID: u.ID, Role: "Engineer", Company: "Acme", Description: "Built things", Area: "Hanoi",
	})
	assert.NoError(t, err)

	exportUC := NewExportExperiencesUseCase(repo)
	output, err := exportUC.Execute(context.Background(), u.ID, nil)

	assert.NoError(t, err)
	assert.Equal(t, "nguyen-experiences.csv", output.Filename)
	assert.Equal(t, user.ExperienceExportFields, output.Header)
	assert.Equal(t, [][]string{{"Engineer", "Acme", "Built things", "Hanoi"}}, output.Records)
}

func TestExportExperiences_EmptyCollection(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)

	exportUC := NewExportExperiencesUseCase(repo)
	output, err := exportUC.Execute(context.Background(), u.ID, nil)

	assert.NoError(t, err)
	assert.Empty(t, output.Records)
	assert.Equal(t, user.ExperienceExportFields, output.Header)
}

func TestEducationUseCase_FullFlow(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := NewEducationUseCase(repo, service.NewUserWriter(repo), nil, nil, logger.NewNopLogger())
	ctx := context.Background()

	created, err := uc.CreateEducation(ctx, CreateEducationInput{
		UserID: u.ID, School: "HUST", Degree: "BSc", Field: "CS",
	})
	assert.NoError(t, err)

	grade := "3.8"
	updated, err := uc.UpdateEducation(ctx, u.ID, created.ID, user.EducationPatch{Grade: &grade})
	assert.NoError(t, err)
	assert.Equal(t, "3.8", updated.Grade)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	listed, err := uc.ListEducations(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	export, err := uc.ExportEducations(ctx, u.ID, nil)
	assert.NoError(t, err)
	assert.Equal(t, "nguyen-educations.csv", export.Filename)
	assert.Equal(t, [][]string{{"HUST", "BSc", "CS", "3.8"}}, export.Records)

	assert.NoError(t, uc.DeleteEducation(ctx, u.ID, created.ID))
	err = uc.DeleteEducation(ctx, u.ID, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
