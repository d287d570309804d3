package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/subresource"
)

// User is the parent aggregate: profile fields plus the embedded career
// collections and the social graph edges. Every mutation flows through the
// aggregate and is persisted as one unit; Version is the optimistic
// concurrency token checked on write.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Surname      string       `json:"surname"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio"`
	Title        string       `json:"title"`
	Area         string       `json:"area"`
	Image        string       `json:"image"`
	PasswordHash string       `json:"-"`
	Experiences  []Experience `json:"experiences"`
	Educations   []Education  `json:"educations"`
	Social       Social       `json:"social"`
	Version      int64        `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrVersionConflict    = errors.New("user was modified concurrently")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)

func (u *User) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{u.Name, "name"},
		{u.Surname, "surname"},
		{u.Email, "email"},
		{u.Bio, "bio"},
		{u.Title, "title"},
		{u.Area, "area"},
		{u.Image, "image"},
	}
	for _, f := range required {
		if f.value == "" {
			return errors.New(f.name + " is required")
		}
	}
	return nil
}

type Experience struct {
	subresource.Meta
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	Area        string     `json:"area"`
}

func (e Experience) Validate() error {
	if e.Role == "" {
		return errors.New("role is required")
	}
	if e.Company == "" {
		return errors.New("company is required")
	}
	return nil
}

type Education struct {
	subresource.Meta
	School      string     `json:"school"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Grade       string     `json:"grade"`
	Activity    string     `json:"activity"`
	Description string     `json:"description"`
}

func (e Education) Validate() error {
	if e.School == "" {
		return errors.New("school is required")
	}
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	return nil
}

// ExperiencePatch is a shallow merge-patch: nil fields keep the stored value.
type ExperiencePatch struct {
	Role        *string    `json:"role"`
	Company     *string    `json:"company"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
	Area        *string    `json:"area"`
}

func (p ExperiencePatch) apply(e *Experience) {
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Area != nil {
		e.Area = *p.Area
	}
}

type EducationPatch struct {
	School      *string    `json:"school"`
	Degree      *string    `json:"degree"`
	Field       *string    `json:"field"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Grade       *string    `json:"grade"`
	Activity    *string    `json:"activity"`
	Description *string    `json:"description"`
}

func (p EducationPatch) apply(e *Education) {
	if p.School != nil {
		e.School = *p.School
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Field != nil {
		e.Field = *p.Field
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.Grade != nil {
		e.Grade = *p.Grade
	}
	if p.Activity != nil {
		e.Activity = *p.Activity
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}

func (u *User) AddExperience(e Experience, now time.Time) (Experience, error) {
	if err := e.Validate(); err != nil {
		return Experience{}, err
	}
	col, created := subresource.Append[Experience](u.Experiences, e, now)
	u.Experiences = col
	return created, nil
}

func (u *User) ExperienceByID(id uuid.UUID) (Experience, error) {
	e, ok := subresource.Find[Experience](u.Experiences, id)
	if !ok {
		return Experience{}, ErrExperienceNotFound
	}
	return e, nil
}

func (u *User) UpdateExperience(id uuid.UUID, patch ExperiencePatch, now time.Time) (Experience, error) {
	col, updated, ok := subresource.Update[Experience](u.Experiences, id, now, patch.apply)
	if !ok {
		return Experience{}, ErrExperienceNotFound
	}
	u.Experiences = col
	return updated, nil
}

func (u *User) RemoveExperience(id uuid.UUID) error {
	col, ok := subresource.Remove[Experience](u.Experiences, id)
	if !ok {
		return ErrExperienceNotFound
	}
	u.Experiences = col
	return nil
}

func (u *User) SetExperienceImage(id uuid.UUID, imageRef string, now time.Time) (Experience, error) {
	col, updated, ok := subresource.SetImage[Experience](u.Experiences, id, imageRef, now)
	if !ok {
		return Experience{}, ErrExperienceNotFound
	}
	u.Experiences = col
	return updated, nil
}

func (u *User) AddEducation(e Education, now time.Time) (Education, error) {
	if err := e.Validate(); err != nil {
		return Education{}, err
	}
	col, created := subresource.Append[Education](u.Educations, e, now)
	u.Educations = col
	return created, nil
}

func (u *User) EducationByID(id uuid.UUID) (Education, error) {
	e, ok := subresource.Find[Education](u.Educations, id)
	if !ok {
		return Education{}, ErrEducationNotFound
	}
	return e, nil
}

func (u *User) UpdateEducation(id uuid.UUID, patch EducationPatch, now time.Time) (Education, error) {
	col, updated, ok := subresource.Update[Education](u.Educations, id, now, patch.apply)
	if !ok {
		return Education{}, ErrEducationNotFound
	}
	u.Educations = col
	return updated, nil
}

func (u *User) RemoveEducation(id uuid.UUID) error {
	col, ok := subresource.Remove[Education](u.Educations, id)
	if !ok {
		return ErrEducationNotFound
	}
	u.Educations = col
	return nil
}

func (u *User) SetEducationImage(id uuid.UUID, imageRef string, now time.Time) (Education, error) {
	col, updated, ok := subresource.SetImage[Education](u.Educations, id, imageRef, now)
	if !ok {
		return Education{}, ErrEducationNotFound
	}
	u.Educations = col
	return updated, nil
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Update persists the whole aggregate, checking the version token.
	// ErrVersionConflict signals a concurrent writer won.
	Update(ctx context.Context, u *User) error
	// UpdatePair persists two aggregates in one transaction so both
	// endpoints of a relationship edge always agree.
	UpdatePair(ctx context.Context, a, b *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*User, error)
}
