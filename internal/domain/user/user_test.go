package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validUser() *User {
	now := time.Now().UTC()
	return &User{
		ID:          uuid.New(),
		Name:        "Nguyen",
		Surname:     "Hoang",
		Email:       "nguyen@example.com",
		Bio:         "Backend engineer",
		Title:       "Engineer",
		Area:        "Hanoi",
		Image:       "https://picsum.photos/200/300",
		Experiences: []Experience{},
		Educations:  []Education{},
		Social:      Social{Friends: []uuid.UUID{}, Sent: []uuid.UUID{}, Pending: []uuid.UUID{}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUserValidate(t *testing.T) {
	u := validUser()
	assert.NoError(t, u.Validate())

	u.Bio = ""
	assert.EqualError(t, u.Validate(), "bio is required")
}

func TestAddExperience(t *testing.T) {
	u := validUser()
	now := time.Now().UTC()

	created, err := u.AddExperience(Experience{Role: "Engineer", Company: "Acme"}, now)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "https://picsum.photos/200/300", created.Image)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Len(t, u.Experiences, 1)
}

func TestAddExperience_ValidationFailure(t *testing.T) {
	u := validUser()

	_, err := u.AddExperience(Experience{Company: "Acme"}, time.Now())
	assert.EqualError(t, err, "role is required")
	assert.Empty(t, u.Experiences)

	_, err = u.AddExperience(Experience{Role: "Engineer"}, time.Now())
	assert.EqualError(t, err, "company is required")
}

func TestUpdateExperience_MergePatch(t *testing.T) {
	u := validUser()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := createdAt.Add(2 * time.Hour)

	created, err := u.AddExperience(Experience{Role: "Engineer", Company: "Acme"}, createdAt)
	assert.NoError(t, err)

	newCompany := "Beta"
	updated, err := u.UpdateExperience(created.ID, ExperiencePatch{Company: &newCompany}, later)

	assert.NoError(t, err)
	assert.Equal(t, "Beta", updated.Company)
	assert.Equal(t, "Engineer", updated.Role)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateExperience_NotFound(t *testing.T) {
	u := validUser()

	role := "Ghost"
	_, err := u.UpdateExperience(uuid.New(), ExperiencePatch{Role: &role}, time.Now())
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestRemoveExperience(t *testing.T) {
	u := validUser()
	now := time.Now().UTC()
	first, _ := u.AddExperience(Experience{Role: "A", Company: "X"}, now)
	second, _ := u.AddExperience(Experience{Role: "B", Company: "Y"}, now)

	assert.NoError(t, u.RemoveExperience(first.ID))
	assert.Len(t, u.Experiences, 1)
	assert.Equal(t, second.ID, u.Experiences[0].ID)

	assert.ErrorIs(t, u.RemoveExperience(first.ID), ErrExperienceNotFound)
}

func TestSetExperienceImage(t *testing.T) {
	u := validUser()
	now := time.Now().UTC()
	created, _ := u.AddExperience(Experience{Role: "A", Company: "X"}, now)

	updated, err := u.SetExperienceImage(created.ID, "https://cdn.example.com/x.jpg", now.Add(time.Minute))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/x.jpg", updated.Image)
	assert.Equal(t, "A", updated.Role)

	_, err = u.SetExperienceImage(uuid.New(), "irrelevant", now)
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestEducationCollection(t *testing.T) {
	u := validUser()
	now := time.Now().UTC()

	_, err := u.AddEducation(Education{Degree: "BSc"}, now)
	assert.EqualError(t, err, "school is required")

	created, err := u.AddEducation(Education{School: "HUST", Degree: "BSc", Field: "CS"}, now)
	assert.NoError(t, err)
	assert.Len(t, u.Educations, 1)

	grade := "3.8"
	updated, err := u.UpdateEducation(created.ID, EducationPatch{Grade: &grade}, now.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, "3.8", updated.Grade)
	assert.Equal(t, "HUST", updated.School)

	found, err := u.EducationByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated, found)

	assert.NoError(t, u.RemoveEducation(created.ID))
	assert.ErrorIs(t, u.RemoveEducation(created.ID), ErrEducationNotFound)
}

func TestExperienceByID(t *testing.T) {
	u := validUser()
	created, _ := u.AddExperience(Experience{Role: "A", Company: "X"}, time.Now())

	found, err := u.ExperienceByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = u.ExperienceByID(uuid.New())
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}
